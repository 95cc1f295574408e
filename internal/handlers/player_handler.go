package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/middleware"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// PlayerHandler handles player account HTTP requests
type PlayerHandler struct {
	playerService services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Me handles GET /me, returning the authenticated player with balance
func (h *PlayerHandler) Me(c *gin.Context) {
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	player, err := h.playerService.GetPlayer(c.Request.Context(), playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func parseTicketNumber(raw string) (int, error) {
	return strconv.Atoi(raw)
}
