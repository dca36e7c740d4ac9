package service

import (
	"errors"
	"fmt"

	"swapi/internal/domain"
	"swapi/internal/metrics"
	"swapi/internal/models"
	"swapi/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUnknownKind       = errors.New("unknown favorite kind")
	ErrMissingUserID     = errors.New("user id is required")
	ErrUserNotFound      = errors.New("user not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)

type existenceChecker interface {
	Exists(id uint) (bool, error)
}

// FavoriteService enforces that a favorite points at an existing user and an
// existing character, planet or vehicle before it is written.
type FavoriteService struct {
	favorites *repository.FavoriteRepository
	users     existenceChecker
	refs      map[domain.ReferenceKind]existenceChecker
}

func NewFavoriteService(
	favRepo *repository.FavoriteRepository,
	userRepo *repository.UserRepository,
	characterRepo *repository.CharacterRepository,
	planetRepo *repository.PlanetRepository,
	vehicleRepo *repository.VehicleRepository,
) *FavoriteService {
	return &FavoriteService{
		favorites: favRepo,
		users:     userRepo,
		refs: map[domain.ReferenceKind]existenceChecker{
			domain.KindCharacter: characterRepo,
			domain.KindPlanet:    planetRepo,
			domain.KindVehicle:   vehicleRepo,
		},
	}
}

// Create links userID to refID. When the link already exists the stored row
// is returned with created=false.
func (s *FavoriteService) Create(userID uint, kind domain.ReferenceKind, refID uint) (*models.Favorite, bool, error) {
	fav, created, err := s.create(userID, kind, refID)
	result := "existing"
	if created {
		result = "created"
	}
	metrics.RecordFavorite(string(kind), "create", outcome(result, err))
	return fav, created, err
}

func (s *FavoriteService) create(userID uint, kind domain.ReferenceKind, refID uint) (*models.Favorite, bool, error) {
	check, ok := s.refs[kind]
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if userID == 0 {
		return nil, false, ErrMissingUserID
	}
	found, err := check.Exists(refID)
	if err != nil {
		return nil, false, fmt.Errorf("look up %s %d: %w", kind.Noun(), refID, err)
	}
	if !found {
		return nil, false, fmt.Errorf("%w: %s %d", ErrReferenceNotFound, kind.Noun(), refID)
	}
	found, err = s.users.Exists(userID)
	if err != nil {
		return nil, false, fmt.Errorf("look up user %d: %w", userID, err)
	}
	if !found {
		return nil, false, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
	}

	existing, err := s.favorites.Find(userID, kind, refID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	fav := models.NewFavorite(userID, kind, refID)
	if err := s.favorites.Create(&fav); err != nil {
		// Lost a race with an identical request; the unique index kept one row.
		if existing, ferr := s.favorites.Find(userID, kind, refID); ferr == nil {
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create favorite: %w", err)
	}
	return &fav, true, nil
}

// Delete removes the link between userID and refID.
func (s *FavoriteService) Delete(userID uint, kind domain.ReferenceKind, refID uint) error {
	err := s.delete(userID, kind, refID)
	metrics.RecordFavorite(string(kind), "delete", outcome("deleted", err))
	return err
}

func (s *FavoriteService) delete(userID uint, kind domain.ReferenceKind, refID uint) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if userID == 0 {
		return ErrMissingUserID
	}
	n, err := s.favorites.Remove(userID, kind, refID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %d, %s %d", ErrFavoriteNotFound, userID, kind.Noun(), refID)
	}
	return nil
}

// List returns every favorite, or only userID's when it is non-nil.
func (s *FavoriteService) List(userID *uint) ([]models.Favorite, error) {
	if userID != nil {
		return s.favorites.ListByUserID(*userID)
	}
	return s.favorites.List()
}

// outcome turns an error into a bounded metric label; success is used when
// err is nil.
func outcome(success string, err error) string {
	switch {
	case err == nil:
		return success
	case errors.Is(err, ErrMissingUserID):
		return "missing_field"
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrReferenceNotFound), errors.Is(err, ErrFavoriteNotFound):
		return "not_found"
	}
	return "error"
}
