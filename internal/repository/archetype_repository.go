package repository

import (
	"cinequiz_backend/internal/model"

	"gorm.io/gorm"
)

type ArchetypeRepository struct {
	DB *gorm.DB
}

func NewArchetypeRepository(db *gorm.DB) *ArchetypeRepository {
	return &ArchetypeRepository{DB: db}
}

func (r *ArchetypeRepository) Create(a *model.Archetype) error {
	return r.DB.Create(a).Error
}

func (r *ArchetypeRepository) FindByID(id string) (*model.Archetype, error) {
	var a model.Archetype
	err := r.DB.Where("id = ?", id).First(&a).Error
	return &a, err
}

// ListEnabled returns the matchable catalog. Order matters to the matcher:
// the first row is the fallback and earlier rows win ties.
func (r *ArchetypeRepository) ListEnabled() ([]model.Archetype, error) {
	var as []model.Archetype
	err := r.DB.Where("enabled = ?", true).
		Order("order_index asc, created_at asc").
		Find(&as).Error
	return as, err
}

func (r *ArchetypeRepository) List(page, limit int) ([]model.Archetype, int64, error) {
	var as []model.Archetype
	var total int64
	query := r.DB.Model(&model.Archetype{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("order_index asc, created_at asc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

func (r *ArchetypeRepository) Update(a *model.Archetype) error {
	return r.DB.Save(a).Error
}

func (r *ArchetypeRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Archetype{}).Error
}
