package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:60;not null" json:"name"`
	LastName string `gorm:"size:60;not null" json:"last_name"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
