package services

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack/internal/models"
	"github.com/fittrack/fittrack/pkg/errors"
)

// In-memory repository fakes so the business rules can be tested without a
// database. They mirror the error contracts of the Postgres implementations.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "user not found")
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	_, err := f.GetByEmail(email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

type fakeFriendRepo struct {
	pairs [][2]uint
	users *fakeUserRepo
}

func newFakeFriendRepo(users *fakeUserRepo) *fakeFriendRepo {
	return &fakeFriendRepo{users: users}
}

func (f *fakeFriendRepo) CreateEdge(userID, friendID uint) error {
	f.pairs = append(f.pairs, [2]uint{userID, friendID})
	return nil
}

func (f *fakeFriendRepo) RemoveEdge(userID, friendID uint) error {
	for i, p := range f.pairs {
		if (p[0] == userID && p[1] == friendID) || (p[0] == friendID && p[1] == userID) {
			f.pairs = append(f.pairs[:i], f.pairs[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeNotFriends, "friendship not found")
}

func (f *fakeFriendRepo) AreFriends(userID, friendID uint) (bool, error) {
	for _, p := range f.pairs {
		if (p[0] == userID && p[1] == friendID) || (p[0] == friendID && p[1] == userID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFriendRepo) ListFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	for _, p := range f.pairs {
		var otherID uint
		switch userID {
		case p[0]:
			otherID = p[1]
		case p[1]:
			otherID = p[0]
		default:
			continue
		}
		if u, ok := f.users.users[otherID]; ok {
			friends = append(friends, *u)
		}
	}
	return friends, nil
}

type fakeWorkoutRepo struct {
	workouts []models.Workout
	nextID   uint
}

func (f *fakeWorkoutRepo) CreateWithExercises(workout *models.Workout) error {
	f.nextID++
	workout.ID = f.nextID
	f.workouts = append(f.workouts, *workout)
	return nil
}

func (f *fakeWorkoutRepo) ListByUser(userID uint) ([]models.Workout, error) {
	var out []models.Workout
	for _, w := range f.workouts {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].WorkoutDate.Equal(out[j].WorkoutDate) {
			return out[i].WorkoutDate.After(out[j].WorkoutDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeWorkoutRepo) SumMinutesInRange(userID uint, from, to time.Time) (int64, error) {
	var total int64
	for _, w := range f.workouts {
		if w.UserID != userID {
			continue
		}
		if !w.WorkoutDate.Before(from) && w.WorkoutDate.Before(to) {
			total += int64(w.DurationMinutes)
		}
	}
	return total, nil
}

type fakeGoalRepo struct {
	goals  []models.Goal
	nextID uint
}

func (f *fakeGoalRepo) Create(goal *models.Goal) error {
	f.nextID++
	goal.ID = f.nextID
	f.goals = append(f.goals, *goal)
	return nil
}

func (f *fakeGoalRepo) ListByUser(userID uint) ([]models.Goal, error) {
	var out []models.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) MarkCompleted(userID, goalID uint) error {
	for i, g := range f.goals {
		if g.ID == goalID && g.UserID == userID {
			f.goals[i].Completed = true
			return nil
		}
	}
	return errors.New(errors.ErrCodeNotFound, "goal not found")
}
