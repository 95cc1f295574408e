package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// GameHandler handles game lifecycle HTTP requests
type GameHandler struct {
	gameService services.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGameRequest is the payload for POST /games
type CreateGameRequest struct {
	Code string                 `json:"code"`
	Spec map[string]interface{} `json:"spec" binding:"required"`
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var request CreateGameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.gameService.CreateGame(c.Request.Context(), request.Code, request.Spec)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// ListGames handles GET /games
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame handles GET /games/:code
func (h *GameHandler) GetGame(c *gin.Context) {
	game, err := h.gameService.GetGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// StartGame handles POST /games/:code/start
func (h *GameHandler) StartGame(c *gin.Context) {
	if err := h.gameService.StartGame(c.Request.Context(), c.Param("code")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game started"})
}

// StopGame handles POST /games/:code/stop
func (h *GameHandler) StopGame(c *gin.Context) {
	if err := h.gameService.StopGame(c.Request.Context(), c.Param("code")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game stopped"})
}

// FinishGame handles POST /games/:code/finish
func (h *GameHandler) FinishGame(c *gin.Context) {
	game, err := h.gameService.FinishGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CancelGame handles POST /games/:code/cancel
func (h *GameHandler) CancelGame(c *gin.Context) {
	game, err := h.gameService.CancelGame(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// SetPurchasingRequest is the payload for PUT /games/:code/purchasing
type SetPurchasingRequest struct {
	Stopped *bool `json:"stopped" binding:"required"`
}

// SetPurchasing handles PUT /games/:code/purchasing
func (h *GameHandler) SetPurchasing(c *gin.Context) {
	var request SetPurchasingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.gameService.SetPurchasingStopped(c.Request.Context(), c.Param("code"), *request.Stopped)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetAuditTrail handles GET /games/:code/audit
func (h *GameHandler) GetAuditTrail(c *gin.Context) {
	events, err := h.gameService.GetAuditTrail(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
