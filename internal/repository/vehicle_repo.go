package repository

import (
	"swapi/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List() ([]models.Vehicle, error) {
	var list []models.Vehicle
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *VehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}


func (r *VehicleRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &models.Vehicle{}, id)
}
