package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/services"
)

// respondServiceError maps service failure signals to HTTP statuses.
// Validation errors are 400s, state conflicts 409s, everything unexpected
// a 500.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrPrizeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateCode),
		errors.Is(err, services.ErrGameTerminal),
		errors.Is(err, services.ErrGameAlreadyActive),
		errors.Is(err, services.ErrGameNotActive),
		errors.Is(err, services.ErrPurchasingNoOp),
		errors.Is(err, services.ErrPurchasingClosed),
		errors.Is(err, services.ErrTicketAlreadySold),
		errors.Is(err, services.ErrPrizeAlreadyAwarded),
		errors.Is(err, services.ErrWrongShipmentStatus),
		errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidTicketNumber),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidPrizeType),
		errors.Is(err, services.ErrInvalidShipmentStatus),
		errors.Is(err, services.ErrWrongPrizeType):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotPrizeOwner):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
