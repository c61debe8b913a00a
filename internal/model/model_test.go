package model

import (
	"encoding/json"
	"testing"

	"cinequiz_backend/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizQuestionDecodeWeights(t *testing.T) {
	q := QuizQuestion{
		DimensionWeights: json.RawMessage(`{"Total escape":{"escapism":3,"fantasy":2},"Something real":{"education":2}}`),
	}

	weights, err := q.DecodeWeights()
	require.NoError(t, err)
	assert.Equal(t, 3, weights["Total escape"][scoring.Escapism])
	assert.Equal(t, 2, weights["Total escape"][scoring.Fantasy])
	assert.Equal(t, 2, weights["Something real"][scoring.Education])
}

func TestQuizQuestionDecodeWeightsRejectsTypo(t *testing.T) {
	q := QuizQuestion{
		DimensionWeights: json.RawMessage(`{"Total escape":{"escapsim":3}}`),
	}

	_, err := q.DecodeWeights()
	assert.ErrorIs(t, err, scoring.ErrUnknownDimension)
}

func TestQuizQuestionDecodeWeightsEmpty(t *testing.T) {
	var q QuizQuestion
	weights, err := q.DecodeWeights()
	require.NoError(t, err)
	assert.Empty(t, weights)
}

func TestArchetypeDecodeRanges(t *testing.T) {
	a := Archetype{
		DimensionRanges: json.RawMessage(`{"escapism":{"min":7,"max":10},"comfort":{"min":0,"max":5}}`),
	}

	ranges, err := a.DecodeRanges()
	require.NoError(t, err)
	assert.Equal(t, scoring.Range{Min: 7, Max: 10}, ranges[scoring.Escapism])
	assert.Equal(t, scoring.Range{Min: 0, Max: 5}, ranges[scoring.Comfort])
}

func TestArchetypeDecodeRangesRejectsUnknownKey(t *testing.T) {
	a := Archetype{
		DimensionRanges: json.RawMessage(`{"nostalgia":{"min":0,"max":10}}`),
	}

	_, err := a.DecodeRanges()
	assert.ErrorIs(t, err, scoring.ErrUnknownDimension)
}

func TestArchetypeDecodeRangesRejectsInvertedRange(t *testing.T) {
	a := Archetype{
		Name:            "Broken",
		DimensionRanges: json.RawMessage(`{"social":{"min":8,"max":2}}`),
	}

	_, err := a.DecodeRanges()
	assert.Error(t, err)
}

func TestArchetypeToScoring(t *testing.T) {
	a := Archetype{
		UUIDBase:        UUIDBase{ID: "abc"},
		Name:            "Escapist Dreamer",
		DimensionRanges: json.RawMessage(`{"escapism":{"min":7,"max":10}}`),
		RandomThoughts:  json.RawMessage(`["Reality is overrated"]`),
		Traits:          json.RawMessage(`["Imaginative","Dreamy"]`),
	}

	sa, err := a.ToScoring()
	require.NoError(t, err)
	assert.Equal(t, "abc", sa.ID)
	assert.Equal(t, []string{"Reality is overrated"}, sa.Thoughts)
	assert.Equal(t, []string{"Imaginative", "Dreamy"}, sa.Traits)
	assert.True(t, sa.Ranges[scoring.Escapism].Contains(8))
}
