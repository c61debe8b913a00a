package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRange() map[Dimension]Range {
	ranges := make(map[Dimension]Range, 12)
	for _, d := range AllDimensions() {
		ranges[d] = Range{Min: 0, Max: 10}
	}
	return ranges
}

func TestMatchEmptyCatalog(t *testing.T) {
	_, _, err := Match(Scores{}, nil)
	assert.ErrorIs(t, err, ErrNoArchetypes)
}

func TestMatchBaselineAlwaysSelected(t *testing.T) {
	baseline := Archetype{ID: "baseline", Name: "Baseline", Ranges: fullRange()}

	for _, scores := range []Scores{
		{},
		{Escapism: 10, Social: 10},
		{Comfort: 3, Rewatch: 7, Variety: 1},
	} {
		got, _, err := Match(scores, []Archetype{baseline})
		require.NoError(t, err)
		assert.Equal(t, "baseline", got.ID)
	}
}

func TestMatchFirstArchetypeIsFallback(t *testing.T) {
	// Nothing overlaps either archetype; the first is returned with score 0.
	a := Archetype{ID: "a", Ranges: map[Dimension]Range{Escapism: {Min: 8, Max: 10}}}
	b := Archetype{ID: "b", Ranges: map[Dimension]Range{Social: {Min: 8, Max: 10}}}

	got, matchScore, err := Match(Scores{Escapism: 1, Social: 1}, []Archetype{a, b})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 0, matchScore)
}

func TestMatchProportionalContribution(t *testing.T) {
	// Both overlap on one dimension, but b's overlapping dimension carries a
	// higher score, so b wins despite an equal hit count.
	a := Archetype{ID: "a", Ranges: map[Dimension]Range{Comfort: {Min: 0, Max: 10}}}
	b := Archetype{ID: "b", Ranges: map[Dimension]Range{Excitement: {Min: 0, Max: 10}}}

	got, matchScore, err := Match(Scores{Comfort: 3, Excitement: 9}, []Archetype{a, b})
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, 9, matchScore)
}

func TestMatchTieKeepsEarlierEntry(t *testing.T) {
	ranges := map[Dimension]Range{Rewatch: {Min: 0, Max: 10}}
	a := Archetype{ID: "first", Ranges: ranges}
	b := Archetype{ID: "second", Ranges: ranges}

	got, matchScore, err := Match(Scores{Rewatch: 5}, []Archetype{a, b})
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)
	assert.Equal(t, 5, matchScore)
}

func TestMatchDeterministic(t *testing.T) {
	archetypes := []Archetype{
		{ID: "a", Ranges: map[Dimension]Range{Escapism: {Min: 4, Max: 8}, Fantasy: {Min: 0, Max: 5}}},
		{ID: "b", Ranges: map[Dimension]Range{Social: {Min: 5, Max: 10}, Variety: {Min: 2, Max: 9}}},
		{ID: "c", Ranges: fullRange()},
	}
	scores := Scores{Escapism: 6, Fantasy: 3, Social: 7, Variety: 4, Comfort: 2}

	first, firstScore, err := Match(scores, archetypes)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, gotScore, err := Match(scores, archetypes)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, firstScore, gotScore)
	}
}
