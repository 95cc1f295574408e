package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterPlayer handles POST /auth/player/register
func (h *AuthHandler) RegisterPlayer(c *gin.Context) {
	var request models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	player, err := h.authService.RegisterPlayer(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// LoginPlayer handles POST /auth/player/login
func (h *AuthHandler) LoginPlayer(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.authService.LoginPlayer(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// LoginOperator handles POST /auth/operator/login
func (h *AuthHandler) LoginOperator(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.authService.LoginOperator(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
