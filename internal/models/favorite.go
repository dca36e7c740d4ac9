package models

import "swapi/internal/domain"

// Favorite links a user to exactly one of a character, planet or vehicle.
// The two reference columns not in use stay NULL; NULLs never collide in the
// unique indexes, so each index only constrains its own kind.
type Favorite struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_fav_user_character;uniqueIndex:idx_fav_user_planet;uniqueIndex:idx_fav_user_vehicle" json:"user_id"`
	CharacterID *uint `gorm:"uniqueIndex:idx_fav_user_character" json:"character_id"`
	PlanetID    *uint `gorm:"uniqueIndex:idx_fav_user_planet" json:"planet_id"`
	VehicleID   *uint `gorm:"uniqueIndex:idx_fav_user_vehicle" json:"vehicle_id"`

	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite builds a favorite row pointing at refID in the table for kind.
func NewFavorite(userID uint, kind domain.ReferenceKind, refID uint) Favorite {
	f := Favorite{UserID: userID}
	id := refID
	switch kind {
	case domain.KindCharacter:
		f.CharacterID = &id
	case domain.KindPlanet:
		f.PlanetID = &id
	case domain.KindVehicle:
		f.VehicleID = &id
	}
	return f
}
