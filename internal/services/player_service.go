package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure PlayerServiceImpl implements PlayerService
var _ PlayerService = (*PlayerServiceImpl)(nil)

// PlayerServiceImpl exposes player account reads
type PlayerServiceImpl struct {
	playerRepo repositories.PlayerRepository
}

// NewPlayerService creates a new PlayerServiceImpl
func NewPlayerService(playerRepo repositories.PlayerRepository) *PlayerServiceImpl {
	return &PlayerServiceImpl{playerRepo: playerRepo}
}

// GetPlayer returns a player with their current balance
func (s *PlayerServiceImpl) GetPlayer(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	player, err := s.playerRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return player, nil
}
