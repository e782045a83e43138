package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Weight float64 `json:"weight"`
}

type userResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Weight float64 `json:"weight"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(req.Name, req.Email, req.Weight)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Weight: user.Weight,
	})
}

func (h *Handler) FindUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'email' query param"})
		return
	}

	user, err := h.users.FindByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Weight: user.Weight,
	})
}
