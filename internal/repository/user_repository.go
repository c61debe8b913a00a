package repository

import (
	"time"

	"cinequiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("last_login", time.Now()).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("last_seen", time.Now()).Error
}

func (r *UserRepository) UpdateRetakeStatus(userID uint, canRetake bool) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("can_retake", canRetake).Error
}

func (r *UserRepository) BatchUpdateRetakeStatus(userIDs []uint, canRetake bool) error {
	return r.DB.Model(&model.User{}).Where("id IN ?", userIDs).Update("can_retake", canRetake).Error
}

func (r *UserRepository) GetRetakeStatus(userID uint) (bool, error) {
	var user model.User
	err := r.DB.Select("can_retake").First(&user, userID).Error
	return user.CanRetake, err
}
