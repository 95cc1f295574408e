package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure PrizeServiceImpl implements PrizeService
var _ PrizeService = (*PrizeServiceImpl)(nil)

// PrizeServiceImpl awards prizes against sold tickets and drives the
// shipment status machine for physical prizes.
type PrizeServiceImpl struct {
	gameRepo   repositories.GameRepository
	ticketRepo repositories.TicketRepository
	prizeRepo  repositories.PrizeRepository
	playerRepo repositories.PlayerRepository
}

// NewPrizeService creates a new PrizeServiceImpl
func NewPrizeService(
	gameRepo repositories.GameRepository,
	ticketRepo repositories.TicketRepository,
	prizeRepo repositories.PrizeRepository,
	playerRepo repositories.PlayerRepository,
) *PrizeServiceImpl {
	return &PrizeServiceImpl{
		gameRepo:   gameRepo,
		ticketRepo: ticketRepo,
		prizeRepo:  prizeRepo,
		playerRepo: playerRepo,
	}
}

// Award grants a prize on a sold ticket. Currency prizes credit the owner's
// balance immediately and are created SHIPPED; physical prizes start the
// shipment workflow at PENDING_SHIPMENT. One prize per ticket: the duplicate
// check runs before any credit so a rejected re-award can never double-pay.
func (s *PrizeServiceImpl) Award(ctx context.Context, gameCode string, ticketNumber int, prizeType, content string) (*models.Prize, error) {
	if _, err := s.gameRepo.FindByCode(ctx, gameCode); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		slog.Error("Award: failed to load game", "error", err, "code", gameCode)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	ticket, err := s.ticketRepo.FindByGameAndNumber(ctx, gameCode, ticketNumber)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		slog.Error("Award: failed to load ticket", "error", err, "code", gameCode, "number", ticketNumber)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	_, err = s.prizeRepo.FindByGameAndTicket(ctx, gameCode, ticketNumber)
	if err == nil {
		return nil, ErrPrizeAlreadyAwarded
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		slog.Error("Award: failed to check existing prize", "error", err, "code", gameCode, "number", ticketNumber)
		return nil, fmt.Errorf("failed to check existing prize: %w", err)
	}

	player, err := s.playerRepo.FindByID(ctx, ticket.PlayerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("Award: failed to load player", "error", err, "playerId", ticket.PlayerID)
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	prize := &models.Prize{
		GameCode:     gameCode,
		TicketNumber: ticketNumber,
		PlayerID:     ticket.PlayerID,
		Type:         prizeType,
		Content:      content,
	}

	switch prizeType {
	case models.PrizeTypeCurrency:
		amount, perr := parseCurrencyAmount(content)
		if perr != nil {
			return nil, ErrInvalidAmount
		}
		// Credit before creating the row. If the row creation then fails
		// the credit stands and the failure alerts; no compensating debit.
		player.Balance += amount
		if err := s.playerRepo.Update(ctx, player); err != nil {
			slog.Error("Award: failed to credit player", "error", err, "playerId", player.ID, "amount", amount)
			return nil, fmt.Errorf("failed to credit player: %w", err)
		}
		prize.Amount = amount
		prize.ShipmentStatus = models.ShipmentStatusShipped
	case models.PrizeTypePhysical:
		prize.ShipmentStatus = models.ShipmentStatusPending
	default:
		return nil, ErrInvalidPrizeType
	}

	if err := s.prizeRepo.Create(ctx, prize); err != nil {
		if prize.Type == models.PrizeTypeCurrency {
			slog.Error("Award: prize row creation failed after balance credit, manual reconciliation required",
				"error", err, "code", gameCode, "number", ticketNumber, "amount", prize.Amount, "playerId", player.ID)
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPrizeAlreadyAwarded
		}
		return nil, fmt.Errorf("failed to create prize: %w", err)
	}

	slog.Info("Prize awarded", "code", gameCode, "number", ticketNumber, "type", prizeType, "playerId", player.ID)
	return prize, nil
}

// NotifyShipment is the player action moving a physical prize from
// PENDING_SHIPMENT to SHIPMENT_NOTIFIED. Only the prize owner may call it.
func (s *PrizeServiceImpl) NotifyShipment(ctx context.Context, prizeID, callerID primitive.ObjectID) (*models.Prize, error) {
	prize, err := s.findPrize(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	if prize.PlayerID != callerID {
		return nil, ErrNotPrizeOwner
	}
	if prize.Type != models.PrizeTypePhysical {
		return nil, ErrWrongPrizeType
	}
	if prize.ShipmentStatus != models.ShipmentStatusPending {
		return nil, ErrWrongShipmentStatus
	}

	prize.ShipmentStatus = models.ShipmentStatusNotified
	if err := s.prizeRepo.Update(ctx, prize); err != nil {
		slog.Error("Failed to update shipment status", "error", err, "prizeId", prizeID)
		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}
	slog.Info("Shipment notified", "prizeId", prizeID, "playerId", callerID)
	return prize, nil
}

// SetShipmentStatus is the operator action. Allowed transitions:
// SHIPMENT_NOTIFIED -> SHIPPED, and the manual reversal SHIPPED ->
// SHIPMENT_NOTIFIED for mis-marked prizes. Currency prizes never move.
func (s *PrizeServiceImpl) SetShipmentStatus(ctx context.Context, prizeID primitive.ObjectID, target string) (*models.Prize, error) {
	prize, err := s.findPrize(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	if prize.Type != models.PrizeTypePhysical {
		return nil, ErrInvalidShipmentStatus
	}

	valid := (target == models.ShipmentStatusShipped && prize.ShipmentStatus == models.ShipmentStatusNotified) ||
		(target == models.ShipmentStatusNotified && prize.ShipmentStatus == models.ShipmentStatusShipped)
	if !valid {
		return nil, ErrInvalidShipmentStatus
	}

	prize.ShipmentStatus = target
	if err := s.prizeRepo.Update(ctx, prize); err != nil {
		slog.Error("Failed to update shipment status", "error", err, "prizeId", prizeID)
		return nil, fmt.Errorf("failed to update shipment status: %w", err)
	}
	slog.Info("Shipment status set", "prizeId", prizeID, "status", target)
	return prize, nil
}

// GamePrizes returns all prizes awarded in a game
func (s *PrizeServiceImpl) GamePrizes(ctx context.Context, gameCode string) ([]*models.Prize, error) {
	if _, err := s.gameRepo.FindByCode(ctx, gameCode); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return s.prizeRepo.FindByGameCode(ctx, gameCode)
}

// PlayerPrizes returns all prizes owned by a player
func (s *PrizeServiceImpl) PlayerPrizes(ctx context.Context, playerID primitive.ObjectID) ([]*models.Prize, error) {
	return s.prizeRepo.FindByPlayerID(ctx, playerID)
}

func (s *PrizeServiceImpl) findPrize(ctx context.Context, prizeID primitive.ObjectID) (*models.Prize, error) {
	prize, err := s.prizeRepo.FindByID(ctx, prizeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPrizeNotFound
	}
	if err != nil {
		slog.Error("Failed to load prize", "error", err, "prizeId", prizeID)
		return nil, fmt.Errorf("failed to load prize: %w", err)
	}
	return prize, nil
}

// parseCurrencyAmount parses a currency prize content as a positive whole
// number of units. Parsing happens exactly once, at award time; the typed
// amount is stored on the prize row.
func parseCurrencyAmount(content string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}
	return amount, nil
}
