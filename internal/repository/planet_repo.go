package repository

import (
	"swapi/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List() ([]models.Planet, error) {
	var list []models.Planet
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *PlanetRepository) GetByID(id uint) (*models.Planet, error) {
	var p models.Planet
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanetRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &models.Planet{}, id)
}
