package services

import (
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/internal/repositories"
	"github.com/fittrack/fittrack/internal/security"
	"github.com/fittrack/fittrack/pkg/errors"
)

type FriendService struct {
	repo     repositories.FriendRepository
	userRepo repositories.UserRepository
}

func NewFriendService(repo repositories.FriendRepository, userRepo repositories.UserRepository) *FriendService {
	return &FriendService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// AddFriend links the user to the account behind friendEmail. The edge is
// undirected: after this call each side sees the other in ListFriends.
func (s *FriendService) AddFriend(userID uint, friendEmail string) error {
	friend, err := s.userRepo.GetByEmail(security.NormalizeEmail(friendEmail))
	if err != nil {
		return err
	}

	if friend.ID == userID {
		return errors.New(errors.ErrCodeSelfFriend, "you cannot add yourself as a friend")
	}

	already, err := s.repo.AreFriends(userID, friend.ID)
	if err != nil {
		return err
	}
	if already {
		return errors.New(errors.ErrCodeAlreadyFriends, "already friends with this user")
	}

	return s.repo.CreateEdge(userID, friend.ID)
}

func (s *FriendService) RemoveFriend(userID uint, friendEmail string) error {
	friend, err := s.userRepo.GetByEmail(security.NormalizeEmail(friendEmail))
	if err != nil {
		return err
	}

	if friend.ID == userID {
		return errors.New(errors.ErrCodeSelfFriend, "you cannot unfriend yourself")
	}

	return s.repo.RemoveEdge(userID, friend.ID)
}

func (s *FriendService) ListFriends(userID uint) ([]models.User, error) {
	return s.repo.ListFriends(userID)
}
