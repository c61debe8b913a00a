package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedQuestion(id uint, option string, weights map[Dimension]int) Question {
	return Question{ID: id, Weights: map[string]map[Dimension]int{option: weights}}
}

func TestComputeScoresClampsAtTen(t *testing.T) {
	// Five answers each worth 5 escapism: raw 25 -> 25/5*10 = 50 -> clamped 10.
	questions := make([]Question, 0, 5)
	answers := make([]Answer, 0, 5)
	for i := uint(1); i <= 5; i++ {
		questions = append(questions, weightedQuestion(i, "a", map[Dimension]int{Escapism: 5}))
		answers = append(answers, Answer{QuestionID: i, SelectedOption: "a"})
	}

	scores := ComputeScores(questions, answers)
	assert.Equal(t, 10, scores[Escapism])
}

func TestComputeScoresNormalization(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		want int
	}{
		{"zero", 0, 0},
		{"one contribution", 1, 2},
		{"rounds half up", 2, 4}, // 2/5*10 = 4
		{"midpoint rounds up", 3, 6},
		{"exact max", 5, 10},
		{"over max clamps", 9, 10},
		{"negative not floored", -3, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := weightedQuestion(1, "a", map[Dimension]int{Pacing: tt.raw})
			scores := ComputeScores([]Question{q}, []Answer{{QuestionID: 1, SelectedOption: "a"}})
			assert.Equal(t, tt.want, scores[Pacing])
		})
	}
}

func TestComputeScoresAllDimensionsPresent(t *testing.T) {
	scores := ComputeScores(nil, nil)
	require.Len(t, scores, 12)
	for _, d := range AllDimensions() {
		v, ok := scores[d]
		require.True(t, ok, "missing dimension %s", d)
		assert.Equal(t, 0, v)
	}
}

func TestComputeScoresRangeWithNonNegativeWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	questions := make([]Question, 0, 20)
	answers := make([]Answer, 0, 20)
	dims := AllDimensions()
	for i := uint(1); i <= 20; i++ {
		weights := map[Dimension]int{
			dims[rng.Intn(len(dims))]: rng.Intn(4),
			dims[rng.Intn(len(dims))]: rng.Intn(4),
		}
		questions = append(questions, weightedQuestion(i, "x", weights))
		answers = append(answers, Answer{QuestionID: i, SelectedOption: "x"})
	}

	scores := ComputeScores(questions, answers)
	for d, v := range scores {
		assert.GreaterOrEqual(t, v, 0, "dimension %s", d)
		assert.LessOrEqual(t, v, 10, "dimension %s", d)
	}
}

func TestComputeScoresOrderIndependent(t *testing.T) {
	questions := []Question{
		weightedQuestion(1, "a", map[Dimension]int{Comfort: 2, Rewatch: 1}),
		weightedQuestion(2, "b", map[Dimension]int{Social: 3}),
		weightedQuestion(3, "c", map[Dimension]int{Comfort: -1, Variety: 2}),
	}
	answers := []Answer{
		{QuestionID: 1, SelectedOption: "a"},
		{QuestionID: 2, SelectedOption: "b"},
		{QuestionID: 3, SelectedOption: "c"},
	}
	reversed := []Answer{answers[2], answers[1], answers[0]}

	assert.Equal(t, ComputeScores(questions, answers), ComputeScores(questions, reversed))
}

func TestComputeScoresIdempotent(t *testing.T) {
	questions := []Question{weightedQuestion(1, "a", map[Dimension]int{Curiosity: 4})}
	answers := []Answer{{QuestionID: 1, SelectedOption: "a"}}

	first := ComputeScores(questions, answers)
	second := ComputeScores(questions, answers)
	assert.Equal(t, first, second)
}

func TestComputeScoresSkipsUnknownQuestion(t *testing.T) {
	questions := []Question{weightedQuestion(1, "a", map[Dimension]int{Fantasy: 3})}
	answers := []Answer{
		{QuestionID: 99, SelectedOption: "a"}, // no such question
		{QuestionID: 1, SelectedOption: "a"},
	}

	scores := ComputeScores(questions, answers)
	assert.Equal(t, 6, scores[Fantasy])
}

func TestComputeScoresUnknownOptionContributesNothing(t *testing.T) {
	questions := []Question{weightedQuestion(1, "a", map[Dimension]int{Emotion: 5})}
	// A joined multi-select value that matches no single label is a no-op.
	answers := []Answer{{QuestionID: 1, SelectedOption: "a, b"}}

	scores := ComputeScores(questions, answers)
	for d, v := range scores {
		assert.Equal(t, 0, v, "dimension %s", d)
	}
}
