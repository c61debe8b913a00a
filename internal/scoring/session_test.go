package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionQuestions() []Question {
	return []Question{
		weightedQuestion(1, "a", map[Dimension]int{Escapism: 2}),
		weightedQuestion(2, "b", map[Dimension]int{Social: 3}),
	}
}

func TestSessionHappyPath(t *testing.T) {
	s := NewSession()
	require.Equal(t, StateNotStarted, s.State())

	s, err := s.Start(sessionQuestions())
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 0, s.QuestionIndex())

	s, err = s.Record(Answer{QuestionID: 1, SelectedOption: "a", ResponseTimeMS: 900})
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 1, s.QuestionIndex())

	// Final answer triggers Submitting.
	s, err = s.Record(Answer{QuestionID: 2, SelectedOption: "b", ResponseTimeMS: 1500})
	require.NoError(t, err)
	assert.Equal(t, StateSubmitting, s.State())
	assert.Len(t, s.Answers(), 2)

	s, err = s.Complete()
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, s.State())
}

func TestSessionEmptyCatalogFails(t *testing.T) {
	s, err := NewSession().Start(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Equal(t, StateFailed, s.State())
}

func TestSessionRejectsOutOfOrderAnswer(t *testing.T) {
	s, err := NewSession().Start(sessionQuestions())
	require.NoError(t, err)

	_, err = s.Record(Answer{QuestionID: 2, SelectedOption: "b"})
	assert.ErrorIs(t, err, ErrAnswerOutOfOrder)
}

func TestSessionRejectsDoubleStart(t *testing.T) {
	s, err := NewSession().Start(sessionQuestions())
	require.NoError(t, err)

	_, err = s.Start(sessionQuestions())
	assert.ErrorIs(t, err, ErrSessionNotStarted)
}

func TestSessionCompleteRequiresSubmitting(t *testing.T) {
	s, err := NewSession().Start(sessionQuestions())
	require.NoError(t, err)

	_, err = s.Complete()
	assert.ErrorIs(t, err, ErrSessionNotComplete)
}

func TestSessionFailDiscardsAnswers(t *testing.T) {
	s, err := NewSession().Start(sessionQuestions())
	require.NoError(t, err)
	s, err = s.Record(Answer{QuestionID: 1, SelectedOption: "a"})
	require.NoError(t, err)

	s = s.Fail()
	assert.Equal(t, StateFailed, s.State())
	assert.Empty(t, s.Answers())

	// No recovery path from Failed.
	_, err = s.Record(Answer{QuestionID: 2, SelectedOption: "b"})
	assert.ErrorIs(t, err, ErrSessionNotActive)
}

func TestSessionCopiesAreIndependent(t *testing.T) {
	base, err := NewSession().Start(sessionQuestions())
	require.NoError(t, err)

	first, err := base.Record(Answer{QuestionID: 1, SelectedOption: "a"})
	require.NoError(t, err)
	second, err := base.Record(Answer{QuestionID: 1, SelectedOption: "other"})
	require.NoError(t, err)

	assert.Equal(t, "a", first.Answers()[0].SelectedOption)
	assert.Equal(t, "other", second.Answers()[0].SelectedOption)
	assert.Equal(t, 0, base.QuestionIndex())
}

func TestDimensionValidation(t *testing.T) {
	d, err := ParseDimension("rewatch")
	require.NoError(t, err)
	assert.Equal(t, Rewatch, d)
	assert.Equal(t, "Rewatch", d.Label())

	_, err = ParseDimension("nostalgia")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}
