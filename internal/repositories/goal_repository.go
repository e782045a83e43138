package repositories

import (
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/pkg/errors"
	"gorm.io/gorm"
)

type GoalRepository interface {
	Create(goal *models.Goal) error
	ListByUser(userID uint) ([]models.Goal, error)
	MarkCompleted(userID, goalID uint) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create goal")
	}
	return nil
}

func (r *goalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal

	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goals).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to list goals")
	}

	return goals, nil
}

// MarkCompleted flips the completed flag. The user id in the WHERE clause
// doubles as the ownership check; completing an already-completed goal is a
// no-op success.
func (r *goalRepository) MarkCompleted(userID, goalID uint) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("completed", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeStorageUnavailable, "failed to complete goal")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "goal not found")
	}

	return nil
}
