package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/middleware"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// TicketHandler handles ticket purchase HTTP requests
type TicketHandler struct {
	ticketService services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// PurchaseRequest is the payload for POST /games/:code/tickets
type PurchaseRequest struct {
	Number int `json:"number" binding:"required"`
}

// Purchase handles POST /games/:code/tickets. The buyer is the
// authenticated player.
func (h *TicketHandler) Purchase(c *gin.Context) {
	var request PurchaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	ticket, err := h.ticketService.Purchase(c.Request.Context(), c.Param("code"), request.Number, playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GameTickets handles GET /games/:code/tickets (operator)
func (h *TicketHandler) GameTickets(c *gin.Context) {
	tickets, err := h.ticketService.GameTickets(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// MyTickets handles GET /me/tickets
func (h *TicketHandler) MyTickets(c *gin.Context) {
	playerID, err := middleware.SubjectObjectID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject id"})
		return
	}
	tickets, err := h.ticketService.PlayerTickets(c.Request.Context(), playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}
