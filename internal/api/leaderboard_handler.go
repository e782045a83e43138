package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) WeeklyLeaderboard(c *gin.Context) {
	entries, err := h.leaderboard.Weekly(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
