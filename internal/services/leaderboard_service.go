package services

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack/internal/repositories"
)

// LeaderboardEntry is one row of the weekly ranking.
type LeaderboardEntry struct {
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	TotalMinutes int64  `json:"totalMinutes"`
}

type LeaderboardService struct {
	userRepo    repositories.UserRepository
	friendRepo  repositories.FriendRepository
	workoutRepo repositories.WorkoutRepository
}

func NewLeaderboardService(
	userRepo repositories.UserRepository,
	friendRepo repositories.FriendRepository,
	workoutRepo repositories.WorkoutRepository,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:    userRepo,
		friendRepo:  friendRepo,
		workoutRepo: workoutRepo,
	}
}

// Weekly ranks the user and their direct friends by total workout minutes
// in the current ISO week (Monday 00:00 UTC to the next Monday). The window
// is derived from the invocation time, so results change across a week
// boundary by design.
func (s *LeaderboardService) Weekly(userID uint) ([]LeaderboardEntry, error) {
	return s.WeeklyAt(userID, time.Now().UTC())
}

func (s *LeaderboardService) WeeklyAt(userID uint, now time.Time) ([]LeaderboardEntry, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.ListFriends(userID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := WeekBounds(now)

	members := append(friends, *user)
	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		total, err := s.workoutRepo.SumMinutesInRange(m.ID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			UserID:       m.ID,
			Name:         m.Name,
			TotalMinutes: total,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalMinutes != entries[j].TotalMinutes {
			return entries[i].TotalMinutes > entries[j].TotalMinutes
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// WeekBounds returns the half-open [Monday 00:00, next Monday 00:00) window
// containing the given instant, in UTC.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	return start, start.AddDate(0, 0, 7)
}
