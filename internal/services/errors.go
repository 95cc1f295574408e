package services

import "errors"

// Failure signals surfaced to callers. Validation and state-conflict errors
// are synchronous and never retried automatically; handlers translate them
// with errors.Is.
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrDuplicateCode  = errors.New("game code already in use")

	// Lifecycle transitions
	ErrGameTerminal      = errors.New("game is already finished or canceled")
	ErrGameAlreadyActive = errors.New("another game is already active")
	ErrGameNotActive     = errors.New("game is not the active game")
	ErrPurchasingNoOp    = errors.New("purchasing flag already in requested state")

	// Ticket purchase
	ErrPurchasingClosed    = errors.New("purchasing is stopped for this game")
	ErrInvalidTicketNumber = errors.New("ticket number out of range")
	ErrTicketAlreadySold   = errors.New("ticket already sold")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Prize award and shipment
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrPrizeNotFound         = errors.New("prize not found")
	ErrPrizeAlreadyAwarded   = errors.New("prize already awarded for this ticket")
	ErrInvalidPrizeType      = errors.New("invalid prize type")
	ErrInvalidAmount         = errors.New("invalid currency amount")
	ErrNotPrizeOwner         = errors.New("caller does not own this prize")
	ErrWrongPrizeType        = errors.New("operation not valid for this prize type")
	ErrWrongShipmentStatus   = errors.New("prize is not in the required shipment status")
	ErrInvalidShipmentStatus = errors.New("invalid shipment status transition")

	// Auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
