package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Workout is an immutable session log entry. Exercises are created in the
// same transaction as their workout and never change afterwards.
type Workout struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"not null;index"`
	User            User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WorkoutDate     time.Time  `gorm:"not null;index"`
	DurationMinutes int        `gorm:"not null"`
	Exercises       []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}

func (w *Workout) BeforeSave(tx *gorm.DB) error {
	if w.DurationMinutes <= 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Workout) TableName() string {
	return "workouts"
}

type Exercise struct {
	ID        uint    `gorm:"primaryKey"`
	WorkoutID uint    `gorm:"not null;index"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Reps      int     `gorm:"not null"`
	Sets      int     `gorm:"not null"`
	Weight    float64 `gorm:"not null;default:0"`
}

func (e *Exercise) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(e.Name) == "" {
		return gorm.ErrInvalidData
	}
	if e.Reps < 0 || e.Sets < 0 || e.Weight < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (Exercise) TableName() string {
	return "exercises"
}
