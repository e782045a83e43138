package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Description string    `gorm:"type:text;not null"`
	TargetValue float64   `gorm:"not null"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Validation runs on create only: the single update path (completing a
// goal) touches just the completed column and must not be rejected by a
// zero-valued model.
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(g.Description) == "" {
		return gorm.ErrInvalidData
	}
	if g.TargetValue < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Goal) TableName() string {
	return "goals"
}
