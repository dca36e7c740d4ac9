package repository

import (
	"swapi/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List() ([]models.User, error) {
	var list []models.User
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &models.User{}, id)
}
