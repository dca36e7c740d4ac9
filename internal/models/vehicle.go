package models

type Vehicle struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	CargoCapacity        string `gorm:"size:60;not null" json:"cargo_capacity"`
	Consumables          string `gorm:"size:60;not null" json:"consumables"`
	CostInCredits        string `gorm:"size:60;not null" json:"cost_in_credits"`
	Crew                 string `gorm:"size:60;not null" json:"crew"`
	Length               string `gorm:"size:60;not null" json:"length"`
	Manufacturer         string `gorm:"size:60;not null" json:"manufacturer"`
	MaxAtmospheringSpeed string `gorm:"size:60;not null" json:"max_atmosphering_speed"`
	Model                string `gorm:"size:60;not null" json:"model"`
	Name                 string `gorm:"uniqueIndex;size:60;not null" json:"name"`
	Passengers           string `gorm:"size:60;not null" json:"passengers"`
	VehicleClass         string `gorm:"size:60;not null" json:"vehicle_class"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
