package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type setGoalRequest struct {
	Description string  `json:"description"`
	TargetValue float64 `json:"targetValue"`
}

type goalResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	TargetValue float64 `json:"targetValue"`
	Completed   bool    `json:"completed"`
}

func (h *Handler) SetGoal(c *gin.Context) {
	var req setGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goals.SetGoal(currentUserID(c), req.Description, req.TargetValue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": goal.ID})
}

func (h *Handler) ListGoals(c *gin.Context) {
	goals, err := h.goals.ListGoals(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalResponse{
			ID:          g.ID,
			Description: g.Description,
			TargetValue: g.TargetValue,
			Completed:   g.Completed,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) CompleteGoal(c *gin.Context) {
	goalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	if err := h.goals.CompleteGoal(currentUserID(c), uint(goalID)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
