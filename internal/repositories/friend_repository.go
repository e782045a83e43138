package repositories

import (
	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/pkg/errors"
	"gorm.io/gorm"
)

type FriendRepository interface {
	CreateEdge(userID, friendID uint) error
	RemoveEdge(userID, friendID uint) error
	AreFriends(userID, friendID uint) (bool, error)
	ListFriends(userID uint) ([]models.User, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateEdge stores the undirected friendship as a single row; every lookup
// matches both column orders.
func (r *friendRepository) CreateEdge(userID, friendID uint) error {
	friendship := &models.Friendship{
		UserID:   userID,
		FriendID: friendID,
	}

	if err := r.db.Create(friendship).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create friendship")
	}
	return nil
}

func (r *friendRepository) RemoveEdge(userID, friendID uint) error {
	result := r.db.Where(
		"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, friendID, friendID, userID,
	).Delete(&models.Friendship{})

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeStorageUnavailable, "failed to remove friendship")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFriends, "friendship not found")
	}

	return nil
}

func (r *friendRepository) AreFriends(userID, friendID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Friendship{}).
		Where(
			"(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID,
		).Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeStorageUnavailable, "failed to check friendship")
	}

	return count > 0, nil
}

func (r *friendRepository) ListFriends(userID uint) ([]models.User, error) {
	var friends []models.User

	err := r.db.Table("users").
		Select("users.*").
		Joins("JOIN friendships ON (friendships.user_id = users.id OR friendships.friend_id = users.id)").
		Where("(friendships.user_id = ? OR friendships.friend_id = ?) AND users.id != ?",
			userID, userID, userID).
		Find(&friends).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to list friends")
	}

	return friends, nil
}
