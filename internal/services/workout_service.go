package services

import (
	"time"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/internal/security"
	"github.com/fittrack/fittrack/pkg/errors"
)

// ExerciseInput is one entry of the nested exercise list collected by the
// caller's form layer.
type ExerciseInput struct {
	Name   string
	Reps   int
	Sets   int
	Weight float64
}

type WorkoutService struct {
	repo repositories.WorkoutRepository
}

func NewWorkoutService(repo repositories.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// LogWorkout appends a workout session with its exercises as one atomic
// unit. The date is truncated to a UTC calendar day so that history and the
// weekly leaderboard window agree on day boundaries.
func (s *WorkoutService) LogWorkout(userID uint, date time.Time, durationMinutes int, exercises []ExerciseInput) (*models.Workout, error) {
	if durationMinutes <= 0 {
		return nil, errors.New(errors.ErrCodeValidation, "duration must be positive")
	}
	if len(exercises) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "a workout needs at least one exercise")
	}

	rows := make([]models.Exercise, 0, len(exercises))
	for _, in := range exercises {
		name := security.SanitizeText(in.Name)
		if name == "" {
			return nil, errors.New(errors.ErrCodeValidation, "exercise name must not be empty")
		}
		if in.Reps < 0 || in.Sets < 0 || in.Weight < 0 {
			return nil, errors.New(errors.ErrCodeValidation, "exercise reps, sets and weight must not be negative")
		}
		rows = append(rows, models.Exercise{
			Name:   name,
			Reps:   in.Reps,
			Sets:   in.Sets,
			Weight: in.Weight,
		})
	}

	workout := &models.Workout{
		UserID:          userID,
		WorkoutDate:     truncateToDay(date),
		DurationMinutes: durationMinutes,
		Exercises:       rows,
	}

	if err := s.repo.CreateWithExercises(workout); err != nil {
		return nil, err
	}

	return workout, nil
}

func (s *WorkoutService) ListWorkouts(userID uint) ([]models.Workout, error) {
	return s.repo.ListByUser(userID)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
