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

// Compile-time check to ensure TopupServiceImpl implements TopupService
var _ TopupService = (*TopupServiceImpl)(nil)

// TopupServiceImpl applies simulated top-ups to player balances. There is
// no payment gateway; the credit lands immediately.
type TopupServiceImpl struct {
	playerRepo repositories.PlayerRepository
	topupRepo  repositories.TopupRepository
}

// NewTopupService creates a new TopupServiceImpl
func NewTopupService(playerRepo repositories.PlayerRepository, topupRepo repositories.TopupRepository) *TopupServiceImpl {
	return &TopupServiceImpl{
		playerRepo: playerRepo,
		topupRepo:  topupRepo,
	}
}

// Topup credits a player's balance by a positive whole amount
func (s *TopupServiceImpl) Topup(ctx context.Context, playerID primitive.ObjectID, amount int64) (*models.Topup, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	player, err := s.playerRepo.FindByID(ctx, playerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("Topup: failed to load player", "error", err, "playerId", playerID)
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	player.Balance += amount
	if err := s.playerRepo.Update(ctx, player); err != nil {
		slog.Error("Topup: failed to credit player", "error", err, "playerId", playerID, "amount", amount)
		return nil, fmt.Errorf("failed to credit player: %w", err)
	}

	topup := &models.Topup{
		PlayerID:     playerID,
		Amount:       amount,
		BalanceAfter: player.Balance,
	}
	if err := s.topupRepo.Create(ctx, topup); err != nil {
		// The credit itself succeeded; the history row is informational
		slog.Error("Topup: failed to record top-up history", "error", err, "playerId", playerID, "amount", amount)
	}

	slog.Info("Top-up applied", "playerId", playerID, "amount", amount, "balance", player.Balance)
	return topup, nil
}

// History returns a player's top-up history
func (s *TopupServiceImpl) History(ctx context.Context, playerID primitive.ObjectID) ([]*models.Topup, error) {
	return s.topupRepo.FindByPlayerID(ctx, playerID)
}
