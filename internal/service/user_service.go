package service

import (
	"cinequiz_backend/internal/model"
	"cinequiz_backend/internal/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(userID uint, url string) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	return s.Repo.FindByID(userID)
}
