package api

import (
	"github.com/fittrack/fittrack/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler bundles the core services behind the HTTP surface. The API is a
// thin skin over the library interface: it performs no authentication and
// trusts the caller-supplied identity header.
type Handler struct {
	users       *services.UserService
	friends     *services.FriendService
	workouts    *services.WorkoutService
	goals       *services.GoalService
	leaderboard *services.LeaderboardService
}

func NewHandler(
	users *services.UserService,
	friends *services.FriendService,
	workouts *services.WorkoutService,
	goals *services.GoalService,
	leaderboard *services.LeaderboardService,
) *Handler {
	return &Handler{
		users:       users,
		friends:     friends,
		workouts:    workouts,
		goals:       goals,
		leaderboard: leaderboard,
	}
}

func SetupRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		v1.POST("/users", h.RegisterUser)
		v1.GET("/users", h.FindUserByEmail)
	}

	// Routes below act on behalf of the identified user
	me := v1.Group("")
	me.Use(IdentityMiddleware())
	{
		me.GET("/friends", h.ListFriends)
		me.POST("/friends", h.AddFriend)
		me.DELETE("/friends", h.RemoveFriend)

		me.GET("/workouts", h.ListWorkouts)
		me.POST("/workouts", h.LogWorkout)

		me.GET("/goals", h.ListGoals)
		me.POST("/goals", h.SetGoal)
		me.POST("/goals/:id/complete", h.CompleteGoal)

		me.GET("/leaderboard", h.WeeklyLeaderboard)
	}

	return r
}
