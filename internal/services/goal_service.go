package services

import (
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/internal/security"
	"github.com/fittrack/fittrack/pkg/errors"
)

type GoalService struct {
	repo repositories.GoalRepository
}

func NewGoalService(repo repositories.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) SetGoal(userID uint, description string, targetValue float64) (*models.Goal, error) {
	description = security.SanitizeText(description)

	if description == "" {
		return nil, errors.New(errors.ErrCodeValidation, "goal description must not be empty")
	}
	if targetValue < 0 {
		return nil, errors.New(errors.ErrCodeValidation, "target value must not be negative")
	}

	goal := &models.Goal{
		UserID:      userID,
		Description: description,
		TargetValue: targetValue,
	}

	if err := s.repo.Create(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) ListGoals(userID uint) ([]models.Goal, error) {
	return s.repo.ListByUser(userID)
}

// CompleteGoal marks one of the user's goals as completed. Goals belonging
// to other users are reported as not found rather than forbidden.
func (s *GoalService) CompleteGoal(userID, goalID uint) error {
	return s.repo.MarkCompleted(userID, goalID)
}
