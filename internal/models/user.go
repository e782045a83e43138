package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Weight    float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// BeforeSave hook for validation. Registration input is validated in the
// service layer with typed errors; this is the last line of defense before
// a row hits the database.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(u.Name) == "" {
		return gorm.ErrInvalidData
	}
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return gorm.ErrInvalidData
	}
	if u.Weight <= 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
