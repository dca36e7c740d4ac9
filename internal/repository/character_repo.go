package repository

import (
	"swapi/internal/models"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) List() ([]models.Character, error) {
	var list []models.Character
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *CharacterRepository) GetByID(id uint) (*models.Character, error) {
	var c models.Character
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &models.Character{}, id)
}

// exists reports whether a row with the given primary key is present in
// model's table.
func exists(db *gorm.DB, model any, id uint) (bool, error) {
	var c int64
	err := db.Model(model).Where("id = ?", id).Count(&c).Error
	return c > 0, err
}
