package repository

import (
	"cinequiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var q model.QuizQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

// ListActive returns the quiz catalog in presentation order.
func (r *QuestionRepository) ListActive() ([]model.QuizQuestion, error) {
	var qs []model.QuizQuestion
	err := r.DB.Where("is_active = ?", true).
		Order("order_index asc, created_at asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(page, limit int) ([]model.QuizQuestion, int64, error) {
	var qs []model.QuizQuestion
	var total int64
	query := r.DB.Model(&model.QuizQuestion{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("order_index asc, created_at asc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Update(q *model.QuizQuestion) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.QuizQuestion{}, id).Error
}
