package models

// Character is a person from the catalogue, served under /people.
type Character struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BirthYear string `gorm:"size:60;not null" json:"birth_year"`
	EyeColor  string `gorm:"size:30;not null" json:"eye_color"`
	Gender    string `gorm:"size:30;not null" json:"gender"`
	HairColor string `gorm:"size:60;not null" json:"hair_color"`
	Height    string `gorm:"size:30;not null" json:"height"`
	Mass      string `gorm:"size:30;not null" json:"mass"`
	Name      string `gorm:"size:120;not null" json:"name"`
	SkinColor string `gorm:"size:60;not null" json:"skin_color"`
}

func (Character) TableName() string {
	return "characters"
}
