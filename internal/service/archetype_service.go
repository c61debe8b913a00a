package service

import (
	"context"
	"encoding/json"

	"cinequiz_backend/internal/model"
	"cinequiz_backend/internal/repository"
	"cinequiz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const archetypeCacheKey = "cinequiz:archetypes:enabled"

type ArchetypeService struct {
	Repo *repository.ArchetypeRepository
	rdb  *redis.Client
}

func NewArchetypeService(repo *repository.ArchetypeRepository, rdb *redis.Client) *ArchetypeService {
	return &ArchetypeService{Repo: repo, rdb: rdb}
}

type ArchetypeRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	DimensionRanges json.RawMessage `json:"dimensionRanges" binding:"required"`
	RandomThoughts  json.RawMessage `json:"randomThoughts"`
	Traits          json.RawMessage `json:"traits"`
	OrderIndex      int             `json:"orderIndex"`
	Enabled         *bool           `json:"enabled"`
}

func (s *ArchetypeService) Create(req ArchetypeRequest) (*model.Archetype, error) {
	a := &model.Archetype{
		Name:            req.Name,
		Description:     req.Description,
		DimensionRanges: req.DimensionRanges,
		RandomThoughts:  req.RandomThoughts,
		Traits:          req.Traits,
		OrderIndex:      req.OrderIndex,
		Enabled:         true,
	}
	if req.Enabled != nil {
		a.Enabled = *req.Enabled
	}

	if _, err := a.ToScoring(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return a, nil
}

func (s *ArchetypeService) Update(id string, req ArchetypeRequest) (*model.Archetype, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	a.Name = req.Name
	a.Description = req.Description
	a.DimensionRanges = req.DimensionRanges
	a.RandomThoughts = req.RandomThoughts
	a.Traits = req.Traits
	a.OrderIndex = req.OrderIndex
	if req.Enabled != nil {
		a.Enabled = *req.Enabled
	}

	if _, err := a.ToScoring(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return a, nil
}

func (s *ArchetypeService) Get(id string) (*model.Archetype, error) {
	return s.Repo.FindByID(id)
}

func (s *ArchetypeService) List(page, limit int) ([]model.Archetype, int64, error) {
	return s.Repo.List(page, limit)
}

// ListEnabled serves the public archetype browse, cached in redis.
func (s *ArchetypeService) ListEnabled(ctx context.Context) ([]model.Archetype, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, archetypeCacheKey).Bytes(); err == nil {
			var as []model.Archetype
			if err := json.Unmarshal(cached, &as); err == nil {
				return as, nil
			}
		}
	}

	as, err := s.Repo.ListEnabled()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(as); err == nil {
			if err := s.rdb.Set(ctx, archetypeCacheKey, payload, catalogCacheTTL).Err(); err != nil {
				logger.Log.Debug("archetype cache write failed", zap.Error(err))
			}
		}
	}
	return as, nil
}

func (s *ArchetypeService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *ArchetypeService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.Background(), archetypeCacheKey).Err(); err != nil {
		logger.Log.Debug("archetype cache invalidation failed", zap.Error(err))
	}
}
