package api

import (
	"net/http"
	"time"

	"github.com/fittrack/fittrack/internal/services"
	"github.com/gin-gonic/gin"
)

type exerciseRequest struct {
	Name   string  `json:"name"`
	Reps   int     `json:"reps"`
	Sets   int     `json:"sets"`
	Weight float64 `json:"weight"`
}

type logWorkoutRequest struct {
	Date            string            `json:"date"` // YYYY-MM-DD
	DurationMinutes int               `json:"durationMinutes"`
	Exercises       []exerciseRequest `json:"exercises"`
}

type workoutResponse struct {
	ID              uint              `json:"id"`
	Date            string            `json:"date"`
	DurationMinutes int               `json:"durationMinutes"`
	Exercises       []exerciseRequest `json:"exercises"`
}

func (h *Handler) LogWorkout(c *gin.Context) {
	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	exercises := make([]services.ExerciseInput, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		exercises = append(exercises, services.ExerciseInput{
			Name:   e.Name,
			Reps:   e.Reps,
			Sets:   e.Sets,
			Weight: e.Weight,
		})
	}

	workout, err := h.workouts.LogWorkout(currentUserID(c), date, req.DurationMinutes, exercises)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": workout.ID})
}

func (h *Handler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workouts.ListWorkouts(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]workoutResponse, 0, len(workouts))
	for _, w := range workouts {
		exercises := make([]exerciseRequest, 0, len(w.Exercises))
		for _, e := range w.Exercises {
			exercises = append(exercises, exerciseRequest{
				Name:   e.Name,
				Reps:   e.Reps,
				Sets:   e.Sets,
				Weight: e.Weight,
			})
		}
		out = append(out, workoutResponse{
			ID:              w.ID,
			Date:            w.WorkoutDate.Format("2006-01-02"),
			DurationMinutes: w.DurationMinutes,
			Exercises:       exercises,
		})
	}

	c.JSON(http.StatusOK, out)
}
