package services

import (
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/internal/security"
	"github.com/fittrack/fittrack/pkg/errors"
)

type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user. Email uniqueness is case-insensitive: the
// address is lower-cased before both the duplicate check and the insert.
func (s *UserService) Register(name, email string, weight float64) (*models.User, error) {
	name = security.SanitizeText(name)
	email = security.NormalizeEmail(email)

	if name == "" {
		return nil, errors.New(errors.ErrCodeValidation, "name must not be empty")
	}
	if email == "" || !security.ValidEmail(email) {
		return nil, errors.New(errors.ErrCodeValidation, "a valid email is required")
	}
	if weight <= 0 {
		return nil, errors.New(errors.ErrCodeValidation, "weight must be positive")
	}

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New(errors.ErrCodeDuplicateEmail, "a user with this email already exists")
	}

	user := &models.User{
		Name:   name,
		Email:  email,
		Weight: weight,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	email = security.NormalizeEmail(email)
	if email == "" {
		return nil, errors.New(errors.ErrCodeValidation, "email must not be empty")
	}

	return s.repo.GetByEmail(email)
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}
