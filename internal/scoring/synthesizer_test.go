package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopStats(t *testing.T) {
	scores := Scores{
		Escapism: 9, Fantasy: 8, Emotion: 7, Education: 6,
		Complexity: 5, Excitement: 4, Pacing: 3, Social: 2,
		Rewatch: 1, Comfort: 0, Variety: 0, Curiosity: 0,
	}

	stats := TopStats(scores)
	require.Len(t, stats, 7)
	assert.Equal(t, Stat{Label: "Escapism", Value: 9, Max: 10}, stats[0])
	assert.Equal(t, Stat{Label: "Pacing", Value: 3, Max: 10}, stats[6])
	for i := 1; i < len(stats); i++ {
		assert.LessOrEqual(t, stats[i].Value, stats[i-1].Value)
	}
}

func TestTopStatsTiesKeepDeclarationOrder(t *testing.T) {
	stats := TopStats(Scores{})
	require.Len(t, stats, 7)
	want := []string{"Escapism", "Fantasy", "Emotion", "Education", "Complexity", "Excitement", "Pacing"}
	for i, s := range stats {
		assert.Equal(t, want[i], s.Label)
	}
}

func TestEvaluateBadges(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   []string
	}{
		{"none earned", Scores{Rewatch: 7, Social: 5}, []string{}},
		{"single threshold", Scores{Rewatch: 8}, []string{"Comfort Curator"}},
		{"declaration order", Scores{Variety: 9, Social: 8}, []string{"Social Butterfly", "Genre Nomad"}},
		{"capped at three", Scores{Rewatch: 10, Social: 10, Variety: 10, Excitement: 10, Curiosity: 10}, []string{"Comfort Curator", "Social Butterfly", "Genre Nomad"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badges := EvaluateBadges(tt.scores)
			names := make([]string, 0, len(badges))
			for _, b := range badges {
				names = append(names, b.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestEvaluateBadgesMonotonic(t *testing.T) {
	base := Scores{Rewatch: 8, Social: 6, Variety: 7}
	earned := EvaluateBadges(base)

	// Raising any score without lowering others must keep every earned badge.
	raised := Scores{Rewatch: 10, Social: 9, Variety: 7}
	after := EvaluateBadges(raised)

	for _, b := range earned {
		assert.Contains(t, after, b)
	}
}

func TestPickThought(t *testing.T) {
	a := Archetype{Thoughts: []string{"one", "two", "three"}}

	rng := rand.New(rand.NewSource(42))
	first := PickThought(rng, a)
	assert.Contains(t, a.Thoughts, first)

	// Same seed, same pick.
	rng = rand.New(rand.NewSource(42))
	assert.Equal(t, first, PickThought(rng, a))
}

func TestPickThoughtEmptyFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, DefaultThought, PickThought(rng, Archetype{}))
}
