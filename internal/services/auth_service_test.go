package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafflehouse/raffle-backend/internal/config"
	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories/memory"
)

func newAuthEnv() (*AuthServiceImpl, *memory.PlayerRepository, *memory.OperatorRepository) {
	players := memory.NewPlayerRepository()
	operators := memory.NewOperatorRepository()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
	return NewAuthService(players, operators, cfg), players, operators
}

func TestRegisterAndLoginPlayer(t *testing.T) {
	auth, _, _ := newAuthEnv()
	ctx := context.Background()

	player, err := auth.RegisterPlayer(ctx, &models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("RegisterPlayer failed: %v", err)
	}
	if player.Balance != 0 {
		t.Errorf("new player balance = %d, want 0", player.Balance)
	}
	if player.Password == "hunter22" {
		t.Error("password must not be stored in plaintext")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := auth.RegisterPlayer(ctx, &models.RegisterRequest{
			Name:     "Alice Again",
			Email:    "alice@example.com",
			Password: "other",
		})
		if !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, err := auth.LoginPlayer(ctx, "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("LoginPlayer failed: %v", err)
		}
		if token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		if _, err := auth.LoginPlayer(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("login with unknown email", func(t *testing.T) {
		if _, err := auth.LoginPlayer(ctx, "bob@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestEnsureOperator(t *testing.T) {
	auth, _, operators := newAuthEnv()
	ctx := context.Background()

	if err := auth.EnsureOperator(ctx, "ops@example.com", "opspass"); err != nil {
		t.Fatalf("EnsureOperator failed: %v", err)
	}
	if _, err := operators.FindByEmail(ctx, "ops@example.com"); err != nil {
		t.Fatalf("operator should exist: %v", err)
	}

	t.Run("idempotent", func(t *testing.T) {
		if err := auth.EnsureOperator(ctx, "ops@example.com", "opspass"); err != nil {
			t.Errorf("second call should be a no-op: %v", err)
		}
	})

	t.Run("operator can log in", func(t *testing.T) {
		token, err := auth.LoginOperator(ctx, "ops@example.com", "opspass")
		if err != nil {
			t.Fatalf("LoginOperator failed: %v", err)
		}
		if token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("skipped when unconfigured", func(t *testing.T) {
		if err := auth.EnsureOperator(ctx, "", ""); err != nil {
			t.Errorf("empty bootstrap config should be a no-op: %v", err)
		}
	})
}
