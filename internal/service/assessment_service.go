package service

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"cinequiz_backend/internal/model"
	"cinequiz_backend/internal/repository"
	"cinequiz_backend/internal/scoring"
	"cinequiz_backend/internal/util"
	"cinequiz_backend/pkg/logger"

	"go.uber.org/zap"
)

// AssessmentService runs the one-shot scoring pipeline: replay the submitted
// answers through a session, score, match, synthesize, persist.
type AssessmentService struct {
	Questions  *repository.QuestionRepository
	Archetypes *repository.ArchetypeRepository
	Results    *repository.ResultRepository
	Users      *repository.UserRepository

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

func NewAssessmentService(
	questions *repository.QuestionRepository,
	archetypes *repository.ArchetypeRepository,
	results *repository.ResultRepository,
	users *repository.UserRepository,
) *AssessmentService {
	return &AssessmentService{
		Questions:  questions,
		Archetypes: archetypes,
		Results:    results,
		Users:      users,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type SubmittedAnswer struct {
	QuestionID     uint   `json:"questionId" binding:"required"`
	SelectedOption string `json:"selectedOption" binding:"required"`
	ResponseTimeMS int    `json:"responseTimeMs"`
}

type SubmitAssessmentRequest struct {
	Answers []SubmittedAnswer `json:"answers" binding:"required"`
}

// Submit runs the full pipeline for one completed quiz. The posted answer
// set must cover every active question; answers are replayed in catalog
// order regardless of posting order. On any failure nothing is persisted
// and the user has to restart the quiz.
func (s *AssessmentService) Submit(userID uint, req SubmitAssessmentRequest) (*model.AssessmentResult, error) {
	canRetake, err := s.Users.GetRetakeStatus(userID)
	if err != nil {
		return nil, err
	}
	if !canRetake {
		return nil, util.ErrRetakeNotAllowed
	}

	rows, err := s.Questions.ListActive()
	if err != nil {
		return nil, err
	}

	questions := make([]scoring.Question, 0, len(rows))
	for i := range rows {
		q, err := rows[i].ToScoring()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	byQuestion := make(map[uint]scoring.Answer, len(req.Answers))
	for _, a := range req.Answers {
		if _, dup := byQuestion[a.QuestionID]; dup {
			return nil, util.ErrIncompleteAnswers
		}
		byQuestion[a.QuestionID] = scoring.Answer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			ResponseTimeMS: a.ResponseTimeMS,
		}
	}

	sess, err := scoring.NewSession().Start(questions)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		a, ok := byQuestion[q.ID]
		if !ok {
			return nil, util.ErrIncompleteAnswers
		}
		sess, err = sess.Record(a)
		if err != nil {
			return nil, err
		}
	}
	if sess.State() != scoring.StateSubmitting {
		return nil, util.ErrIncompleteAnswers
	}

	scores := scoring.ComputeScores(questions, sess.Answers())

	archetypeRows, err := s.Archetypes.ListEnabled()
	if err != nil {
		return nil, err
	}
	archetypes := make([]scoring.Archetype, 0, len(archetypeRows))
	for i := range archetypeRows {
		a, err := archetypeRows[i].ToScoring()
		if err != nil {
			return nil, err
		}
		archetypes = append(archetypes, a)
	}

	matched, matchScore, err := scoring.Match(scores, archetypes)
	if err != nil {
		return nil, err
	}
	if matchScore == 0 {
		logger.Log.Warn("no dimension overlap, fell back to first archetype",
			zap.Uint("userId", userID),
			zap.String("archetype", matched.Name),
		)
	}

	stats := scoring.TopStats(scores)
	badges := scoring.EvaluateBadges(scores)

	s.mu.Lock()
	thought := scoring.PickThought(s.rng, matched)
	s.mu.Unlock()

	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	badgesJSON, err := json.Marshal(badges)
	if err != nil {
		return nil, err
	}

	result := &model.AssessmentResult{
		UserID:        userID,
		ArchetypeID:   matched.ID,
		Scores:        scoresJSON,
		Stats:         statsJSON,
		Badges:        badgesJSON,
		RandomThought: thought,
	}

	answers := make([]model.AssessmentAnswer, 0, len(req.Answers))
	for _, a := range sess.Answers() {
		answers = append(answers, model.AssessmentAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			ResponseTimeMS: a.ResponseTimeMS,
		})
	}

	if err := s.Results.CreateWithAnswers(result, answers); err != nil {
		_ = sess.Fail()
		return nil, err
	}
	sess, _ = sess.Complete()
	logger.Log.Debug("assessment session completed",
		zap.String("state", sess.State().String()),
		zap.Uint("userId", userID),
	)

	if err := s.Users.UpdateRetakeStatus(userID, false); err != nil {
		logger.Log.Error("failed to lock retake after submission",
			zap.Uint("userId", userID), zap.Error(err))
	}

	return result, nil
}

func (s *AssessmentService) GetLatestResult(userID uint) (*model.AssessmentResult, error) {
	return s.Results.FindLatestByUser(userID)
}

func (s *AssessmentService) ListUserResults(userID uint) ([]model.AssessmentResult, error) {
	return s.Results.ListByUser(userID)
}

func (s *AssessmentService) ListResults(page, limit int) ([]model.AssessmentResult, int64, error) {
	return s.Results.List(page, limit)
}

type ResultDetail struct {
	Result  *model.AssessmentResult  `json:"result"`
	Answers []model.AssessmentAnswer `json:"answers"`
}

func (s *AssessmentService) GetResultDetail(id string) (*ResultDetail, error) {
	result, err := s.Results.FindByID(id)
	if err != nil {
		return nil, err
	}
	answers, err := s.Results.ListAnswers(id)
	if err != nil {
		return nil, err
	}
	return &ResultDetail{Result: result, Answers: answers}, nil
}

type QuizStatus struct {
	CanRetake bool                    `json:"canRetake"`
	HasResult bool                    `json:"hasResult"`
	Latest    *model.AssessmentResult `json:"latest,omitempty"`
}

// GetQuizStatus reports whether the user may take the quiz and their latest
// outcome if they already did.
func (s *AssessmentService) GetQuizStatus(userID uint) (*QuizStatus, error) {
	canRetake, err := s.Users.GetRetakeStatus(userID)
	if err != nil {
		return nil, err
	}

	status := &QuizStatus{CanRetake: canRetake}
	latest, err := s.Results.FindLatestByUser(userID)
	if err == nil {
		status.HasResult = true
		status.Latest = latest
	}
	return status, nil
}

func (s *AssessmentService) SetRetake(userIDs []uint, canRetake bool) error {
	return s.Users.BatchUpdateRetakeStatus(userIDs, canRetake)
}
