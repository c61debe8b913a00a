package service

import (
	"context"
	"encoding/json"
	"time"

	"cinequiz_backend/internal/model"
	"cinequiz_backend/internal/repository"
	"cinequiz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionCacheKey = "cinequiz:questions:active"
	catalogCacheTTL  = 10 * time.Minute
)

type QuestionService struct {
	Repo *repository.QuestionRepository
	rdb  *redis.Client
}

func NewQuestionService(repo *repository.QuestionRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{Repo: repo, rdb: rdb}
}

type QuizQuestionRequest struct {
	Text             string             `json:"text" binding:"required"`
	QuestionType     model.QuestionType `json:"questionType" binding:"required"`
	Options          json.RawMessage    `json:"options" binding:"required"`
	DimensionWeights json.RawMessage    `json:"dimensionWeights"`
	OrderIndex       int                `json:"orderIndex"`
	IsActive         *bool              `json:"isActive"`
}

// StudentQuizQuestion is the player-facing projection: the weight table is
// withheld so clients cannot reverse-engineer the scoring.
type StudentQuizQuestion struct {
	ID           uint               `json:"id"`
	Text         string             `json:"text"`
	QuestionType model.QuestionType `json:"questionType"`
	Options      json.RawMessage    `json:"options"`
	OrderIndex   int                `json:"orderIndex"`
}

func (s *QuestionService) Create(req QuizQuestionRequest) (*model.QuizQuestion, error) {
	q := &model.QuizQuestion{
		Text:             req.Text,
		QuestionType:     req.QuestionType,
		Options:          req.Options,
		DimensionWeights: req.DimensionWeights,
		OrderIndex:       req.OrderIndex,
		IsActive:         true,
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}

	// A weight table with a typoed dimension key never reaches the catalog.
	if _, err := q.DecodeWeights(); err != nil {
		return nil, err
	}
	if _, err := q.DecodeOptions(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return q, nil
}

func (s *QuestionService) Update(id uint, req QuizQuestionRequest) (*model.QuizQuestion, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	q.Text = req.Text
	q.QuestionType = req.QuestionType
	q.Options = req.Options
	q.DimensionWeights = req.DimensionWeights
	q.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}

	if _, err := q.DecodeWeights(); err != nil {
		return nil, err
	}
	if _, err := q.DecodeOptions(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return q, nil
}

func (s *QuestionService) Get(id uint) (*model.QuizQuestion, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionService) List(page, limit int) ([]model.QuizQuestion, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *QuestionService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// ListStudentQuestions serves the session-start catalog fetch, cached in
// redis. Cache failures fall through to the database.
func (s *QuestionService) ListStudentQuestions(ctx context.Context) ([]StudentQuizQuestion, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, questionCacheKey).Bytes(); err == nil {
			var qs []StudentQuizQuestion
			if err := json.Unmarshal(cached, &qs); err == nil {
				return qs, nil
			}
		}
	}

	rows, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	qs := make([]StudentQuizQuestion, len(rows))
	for i, row := range rows {
		qs[i] = StudentQuizQuestion{
			ID:           row.ID,
			Text:         row.Text,
			QuestionType: row.QuestionType,
			Options:      row.Options,
			OrderIndex:   row.OrderIndex,
		}
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(qs); err == nil {
			if err := s.rdb.Set(ctx, questionCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Debug("question cache write failed", zap.Error(err))
			}
		}
	}
	return qs, nil
}

func (s *QuestionService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), questionCacheKey).Err(); err != nil {
		logger.Log.Debug("question cache invalidation failed", zap.Error(err))
	}
}
