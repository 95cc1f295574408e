package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/middleware"
	"github.com/rafflehouse/raffle-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrizeHandler handles prize award and shipment HTTP requests
type PrizeHandler struct {
	prizeService services.PrizeService
}

// NewPrizeHandler creates a new PrizeHandler
func NewPrizeHandler(prizeService services.PrizeService) *PrizeHandler {
	return &PrizeHandler{prizeService: prizeService}
}

// AwardRequest is the payload for POST /games/:code/tickets/:number/prize
type AwardRequest struct {
	Type    string `json:"type" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Award handles POST /games/:code/tickets/:number/prize (operator)
func (h *PrizeHandler) Award(c *gin.Context) {
	number, err := parseTicketNumber(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket number"})
		return
	}
	var request AwardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prize, err := h.prizeService.Award(c.Request.Context(), c.Param("code"), number, request.Type, request.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prize)
}

// NotifyShipment handles POST /prizes/:id/notify-shipment (prize owner)
func (h *PrizeHandler) NotifyShipment(c *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	callerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	prize, err := h.prizeService.NotifyShipment(c.Request.Context(), prizeID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prize)
}

// SetShipmentStatusRequest is the payload for PUT /prizes/:id/shipment-status
type SetShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetShipmentStatus handles PUT /prizes/:id/shipment-status (operator)
func (h *PrizeHandler) SetShipmentStatus(c *gin.Context) {
	prizeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	var request SetShipmentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prize, err := h.prizeService.SetShipmentStatus(c.Request.Context(), prizeID, request.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prize)
}

// GamePrizes handles GET /games/:code/prizes (operator)
func (h *PrizeHandler) GamePrizes(c *gin.Context) {
	prizes, err := h.prizeService.GamePrizes(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prizes)
}

// MyPrizes handles GET /me/prizes
func (h *PrizeHandler) MyPrizes(c *gin.Context) {
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	prizes, err := h.prizeService.PlayerPrizes(c.Request.Context(), playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prizes)
}
