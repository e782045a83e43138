package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type friendRequest struct {
	Email string `json:"email"`
}

func (h *Handler) AddFriend(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.friends.AddFriend(currentUserID(c), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFriend(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.friends.RemoveFriend(currentUserID(c), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListFriends(c *gin.Context) {
	friends, err := h.friends.ListFriends(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]userResponse, 0, len(friends))
	for _, f := range friends {
		out = append(out, userResponse{
			ID:     f.ID,
			Name:   f.Name,
			Email:  f.Email,
			Weight: f.Weight,
		})
	}

	c.JSON(http.StatusOK, out)
}
