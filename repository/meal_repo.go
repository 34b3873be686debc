// repository/meal_repo.go
package repository

import (
	"backend/models"

	"gorm.io/gorm"
)

// DayDietCount is one row of the per-day on-diet grouping.
type DayDietCount struct {
	Day   string
	Count int64
}

// MealRepository is the record store for meals. Every query that
// touches more than one meal is scoped by owner.
type MealRepository interface {
	Insert(meal *models.Meal) error
	FindByID(id string) (*models.Meal, error)
	// FindByOwner returns the owner's meals in store-native order;
	// no sort is imposed.
	FindByOwner(owner string) ([]models.Meal, error)
	CountByOwner(owner string, insideDiet *bool) (int64, error)
	// OnDietCountsByDay groups the owner's on-diet meals by their
	// day token and counts each group.
	OnDietCountsByDay(owner string) ([]DayDietCount, error)
	// UpdateByID replaces title, description, day, hour and
	// insideDiet as a group. ID and owner are never written.
	UpdateByID(id string, meal *models.Meal) error
	DeleteByID(id string) error
}

type mealRepo struct {
	db *gorm.DB
}

func NewMealRepo(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) Insert(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepo) FindByID(id string) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepo) FindByOwner(owner string) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.Where("user_id = ?", owner).Find(&meals).Error
	return meals, err
}

func (r *mealRepo) CountByOwner(owner string, insideDiet *bool) (int64, error) {
	q := r.db.Model(&models.Meal{}).Where("user_id = ?", owner)
	if insideDiet != nil {
		q = q.Where("inside_diet = ?", *insideDiet)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *mealRepo) OnDietCountsByDay(owner string) ([]DayDietCount, error) {
	var rows []DayDietCount
	err := r.db.Model(&models.Meal{}).
		Select("day, count(*) as count").
		Where("user_id = ? AND inside_diet = ?", owner, true).
		Group("day").
		Scan(&rows).Error
	return rows, err
}

func (r *mealRepo) UpdateByID(id string, meal *models.Meal) error {
	// map form so a false insideDiet is still written
	return r.db.Model(&models.Meal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       meal.Title,
			"description": meal.Description,
			"day":         meal.Day,
			"hour":        meal.Hour,
			"inside_diet": meal.InsideDiet,
		}).Error
}

func (r *mealRepo) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Meal{}).Error
}
