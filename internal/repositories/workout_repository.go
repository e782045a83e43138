package repositories

import (
	"time"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/pkg/errors"
	"gorm.io/gorm"
)

type WorkoutRepository interface {
	CreateWithExercises(workout *models.Workout) error
	ListByUser(userID uint) ([]models.Workout, error)
	SumMinutesInRange(userID uint, from, to time.Time) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// CreateWithExercises persists the workout and all of its exercise rows in
// one transaction; a failure on any row rolls back the whole session.
func (r *workoutRepository) CreateWithExercises(workout *models.Workout) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		exercises := workout.Exercises
		workout.Exercises = nil

		if err := tx.Create(workout).Error; err != nil {
			return err
		}

		for i := range exercises {
			exercises[i].WorkoutID = workout.ID
		}
		if err := tx.Create(&exercises).Error; err != nil {
			return err
		}

		workout.Exercises = exercises
		return nil
	})

	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to log workout")
	}
	return nil
}

// ListByUser returns the user's history, newest workout date first. Equal
// dates keep insertion order via the id tiebreak.
func (r *workoutRepository) ListByUser(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout

	err := r.db.Where("user_id = ?", userID).
		Preload("Exercises").
		Order("workout_date DESC, id ASC").
		Find(&workouts).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to list workouts")
	}

	return workouts, nil
}

// SumMinutesInRange totals workout minutes for [from, to). Users with no
// matching workouts sum to zero.
func (r *workoutRepository) SumMinutesInRange(userID uint, from, to time.Time) (int64, error) {
	var total int64

	err := r.db.Model(&models.Workout{}).
		Where("user_id = ? AND workout_date >= ? AND workout_date < ?", userID, from, to).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&total).Error

	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to sum workout minutes")
	}

	return total, nil
}
