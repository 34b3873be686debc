// services/user_service.go
package services

import (
	"backend/models"
	"backend/repository"

	"github.com/google/uuid"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a diary owner. The generated id is what travels in
// the session cookie from then on.
func (s *UserService) Create(name string) (*models.User, error) {
	user := &models.User{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.repo.Insert(user); err != nil {
		return nil, err
	}
	return user, nil
}
