package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafflehouse/raffle-backend/internal/config"
	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"github.com/rafflehouse/raffle-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl issues JWT credentials for players and operators
type AuthServiceImpl struct {
	playerRepo   repositories.PlayerRepository
	operatorRepo repositories.OperatorRepository
	cfg          *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(playerRepo repositories.PlayerRepository, operatorRepo repositories.OperatorRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		playerRepo:   playerRepo,
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

// RegisterPlayer creates a player account with a zero balance
func (s *AuthServiceImpl) RegisterPlayer(ctx context.Context, req *models.RegisterRequest) (*models.Player, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	player := &models.Player{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		slog.Error("Failed to create player", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	slog.Info("Player registered", "playerId", player.ID, "email", player.Email)
	return player, nil
}

// LoginPlayer checks a player's credentials and returns a bearer token
func (s *AuthServiceImpl) LoginPlayer(ctx context.Context, email, password string) (string, error) {
	player, err := s.playerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(player.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(player.ID.Hex(), utils.RolePlayer, s.cfg)
}

// LoginOperator checks an operator's credentials and returns a bearer token
func (s *AuthServiceImpl) LoginOperator(ctx context.Context, email, password string) (string, error) {
	operator, err := s.operatorRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(operator.ID.Hex(), utils.RoleOperator, s.cfg)
}

// EnsureOperator creates the bootstrap operator account from configuration
// when it does not exist yet. Called once at startup.
func (s *AuthServiceImpl) EnsureOperator(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.operatorRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check bootstrap operator: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	operator := &models.Operator{Email: email, Password: string(hashed), Name: "bootstrap"}
	if err := s.operatorRepo.Create(ctx, operator); err != nil && !errors.Is(err, repositories.ErrDuplicateKey) {
		return fmt.Errorf("failed to create bootstrap operator: %w", err)
	}
	slog.Info("Bootstrap operator ensured", "email", email)
	return nil
}
