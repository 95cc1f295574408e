package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TicketServiceImpl implements TicketService
var _ TicketService = (*TicketServiceImpl)(nil)

// TicketServiceImpl validates and executes ticket purchases. A purchase is
// one logical transaction: either the ticket row exists and the balance was
// debited, or neither happened.
type TicketServiceImpl struct {
	gameRepo   repositories.GameRepository
	ticketRepo repositories.TicketRepository
	playerRepo repositories.PlayerRepository
}

// NewTicketService creates a new TicketServiceImpl
func NewTicketService(
	gameRepo repositories.GameRepository,
	ticketRepo repositories.TicketRepository,
	playerRepo repositories.PlayerRepository,
) *TicketServiceImpl {
	return &TicketServiceImpl{
		gameRepo:   gameRepo,
		ticketRepo: ticketRepo,
		playerRepo: playerRepo,
	}
}

// Purchase sells one numbered ticket to a player, debiting the price from
// their balance. The price is captured on the ticket row so later spec
// changes never affect refunds.
func (s *TicketServiceImpl) Purchase(ctx context.Context, gameCode string, number int, playerID primitive.ObjectID) (*models.Ticket, error) {
	game, err := s.gameRepo.FindByCode(ctx, gameCode)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		slog.Error("Purchase: failed to load game", "error", err, "code", gameCode)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	if game.PurchasingStopped {
		return nil, ErrPurchasingClosed
	}
	if number < 1 || number > game.TicketCount() {
		return nil, ErrInvalidTicketNumber
	}

	_, err = s.ticketRepo.FindByGameAndNumber(ctx, gameCode, number)
	if err == nil {
		return nil, ErrTicketAlreadySold
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		slog.Error("Purchase: failed to check existing ticket", "error", err, "code", gameCode, "number", number)
		return nil, fmt.Errorf("failed to check existing ticket: %w", err)
	}

	player, err := s.playerRepo.FindByID(ctx, playerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("Purchase: failed to load player", "error", err, "playerId", playerID)
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	price := game.TicketPrice()
	if player.Balance < price {
		return nil, ErrInsufficientBalance
	}

	player.Balance -= price
	if err := s.playerRepo.Update(ctx, player); err != nil {
		slog.Error("Purchase: failed to debit player", "error", err, "playerId", playerID, "price", price)
		return nil, fmt.Errorf("failed to debit player: %w", err)
	}

	ticket := &models.Ticket{
		GameCode: gameCode,
		Number:   number,
		PlayerID: playerID,
		Price:    price,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		// Undo the debit: the unique (game, number) constraint decided a
		// concurrent race against us, or storage failed outright.
		player.Balance += price
		if uerr := s.playerRepo.Update(ctx, player); uerr != nil {
			slog.Error("Purchase: failed to refund debit after ticket create failure",
				"error", uerr, "playerId", playerID, "price", price)
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrTicketAlreadySold
		}
		slog.Error("Purchase: failed to create ticket", "error", err, "code", gameCode, "number", number)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	slog.Info("Ticket purchased", "code", gameCode, "number", number, "playerId", playerID, "price", price)
	return ticket, nil
}

// GameTickets returns all tickets sold in a game
func (s *TicketServiceImpl) GameTickets(ctx context.Context, gameCode string) ([]*models.Ticket, error) {
	if _, err := s.gameRepo.FindByCode(ctx, gameCode); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return s.ticketRepo.FindByGameCode(ctx, gameCode)
}

// PlayerTickets returns all tickets owned by a player
func (s *TicketServiceImpl) PlayerTickets(ctx context.Context, playerID primitive.ObjectID) ([]*models.Ticket, error) {
	return s.ticketRepo.FindByPlayerID(ctx, playerID)
}
