package repository

import (
	"cinequiz_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// CreateWithAnswers persists one result and its raw answers atomically.
// The two writes are the engine's only output; if either fails nothing is
// kept.
func (r *ResultRepository) CreateWithAnswers(result *model.AssessmentResult, answers []model.AssessmentAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ResultID = result.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ResultRepository) FindByID(id string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.DB.Preload("Archetype").Where("id = ?", id).First(&result).Error
	return &result, err
}

// FindLatestByUser returns the user's most recent result.
func (r *ResultRepository) FindLatestByUser(userID uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.DB.Preload("Archetype").
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) ListByUser(userID uint) ([]model.AssessmentResult, error) {
	var results []model.AssessmentResult
	err := r.DB.Preload("Archetype").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) List(page, limit int) ([]model.AssessmentResult, int64, error) {
	var results []model.AssessmentResult
	var total int64
	query := r.DB.Model(&model.AssessmentResult{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Preload("Archetype").
		Order("created_at desc").Offset(offset).Limit(limit).
		Find(&results).Error
	return results, total, err
}

func (r *ResultRepository) ListAnswers(resultID string) ([]model.AssessmentAnswer, error) {
	var answers []model.AssessmentAnswer
	err := r.DB.Where("result_id = ?", resultID).Order("id asc").Find(&answers).Error
	return answers, err
}
