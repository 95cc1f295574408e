package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/middleware"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// TopupHandler handles simulated balance top-up HTTP requests
type TopupHandler struct {
	topupService services.TopupService
}

// NewTopupHandler creates a new TopupHandler
func NewTopupHandler(topupService services.TopupService) *TopupHandler {
	return &TopupHandler{topupService: topupService}
}

// TopupRequest is the payload for POST /me/topups
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// Topup handles POST /me/topups
func (h *TopupHandler) Topup(c *gin.Context) {
	var request TopupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	topup, err := h.topupService.Topup(c.Request.Context(), playerID, request.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topup)
}

// History handles GET /me/topups
func (h *TopupHandler) History(c *gin.Context) {
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	topups, err := h.topupService.History(c.Request.Context(), playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topups)
}
