package models

type Planet struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Climate        string `gorm:"size:60;not null" json:"climate"`
	Diameter       string `gorm:"size:60;not null" json:"diameter"`
	Gravity        string `gorm:"size:60;not null" json:"gravity"`
	Name           string `gorm:"size:60;not null" json:"name"`
	OrbitalPeriod  string `gorm:"size:60;not null" json:"orbital_period"`
	Population     string `gorm:"size:60;not null" json:"population"`
	RotationPeriod string `gorm:"size:60;not null" json:"rotation_period"`
	SurfaceWater   string `gorm:"size:60;not null" json:"surface_water"`
	Terrain        string `gorm:"size:60;not null" json:"terrain"`
}

func (Planet) TableName() string {
	return "planets"
}
