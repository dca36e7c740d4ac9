package repository

import (
	"swapi/internal/domain"
	"swapi/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(f *models.Favorite) error {
	return r.db.Create(f).Error
}

// Find returns the favorite linking userID to refID in kind's table.
// Returns gorm.ErrRecordNotFound when there is none.
func (r *FavoriteRepository) Find(userID uint, kind domain.ReferenceKind, refID uint) (*models.Favorite, error) {
	var f models.Favorite
	err := r.db.Where("user_id = ? AND "+kind.Column()+" = ?", userID, refID).Order("id ASC").First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Remove deletes every favorite linking userID to refID and returns how many
// rows went away.
func (r *FavoriteRepository) Remove(userID uint, kind domain.ReferenceKind, refID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND "+kind.Column()+" = ?", userID, refID).Delete(&models.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *FavoriteRepository) List() ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *FavoriteRepository) ListByUserID(userID uint) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}
