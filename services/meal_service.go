// services/meal_service.go
package services

import (
	"errors"

	"backend/models"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	repo repository.MealRepository
}

func NewMealService(repo repository.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// authorize is the single ownership gate for every per-id operation.
// A missing meal and a meal owned by someone else both come back as
// ErrMealNotFound.
func (s *MealService) authorize(sessionID, mealID string) (*models.Meal, error) {
	meal, err := s.repo.FindByID(mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if meal.UserID != sessionID {
		return nil, ErrMealNotFound
	}
	return meal, nil
}

func (s *MealService) Create(sessionID, title, description, day, hour string, insideDiet bool) (*models.Meal, error) {
	meal := &models.Meal{
		ID:          uuid.NewString(),
		UserID:      sessionID,
		Title:       title,
		Description: description,
		Day:         day,
		Hour:        hour,
		InsideDiet:  insideDiet,
	}
	if err := s.repo.Insert(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(sessionID string) ([]models.Meal, error) {
	return s.repo.FindByOwner(sessionID)
}

func (s *MealService) Get(sessionID, mealID string) (*models.Meal, error) {
	return s.authorize(sessionID, mealID)
}

// Update replaces all five mutable fields as a group; id and owner
// stay as they were at creation.
func (s *MealService) Update(sessionID, mealID, title, description, day, hour string, insideDiet bool) error {
	if _, err := s.authorize(sessionID, mealID); err != nil {
		return err
	}
	return s.repo.UpdateByID(mealID, &models.Meal{
		Title:       title,
		Description: description,
		Day:         day,
		Hour:        hour,
		InsideDiet:  insideDiet,
	})
}

func (s *MealService) Delete(sessionID, mealID string) error {
	if _, err := s.authorize(sessionID, mealID); err != nil {
		return err
	}
	return s.repo.DeleteByID(mealID)
}
