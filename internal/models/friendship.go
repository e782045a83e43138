package models

import (
	"time"
)

// Friendship is one row per unordered user pair. The edge is undirected:
// lookups always match both column orders, so (A,B) and (B,A) are the same
// relationship and the unique index forbids a duplicate in either order
// together with the repository's symmetric existence check.
type Friendship struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_friendship_pair,unique"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FriendID  uint      `gorm:"not null;index:idx_friendship_pair,unique"`
	Friend    User      `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Friendship) TableName() string {
	return "friendships"
}
