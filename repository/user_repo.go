// repository/user_repo.go
package repository

import (
	"backend/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(user *models.User) error
	FindByID(id string) (*models.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Insert(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
