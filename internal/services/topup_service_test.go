package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafflehouse/raffle-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTopup(t *testing.T) {
	env := newTestEnv()
	topups := memory.NewTopupRepository()
	service := NewTopupService(env.players, topups)
	ctx := context.Background()
	player := env.newPlayer(t, 10)

	topup, err := service.Topup(ctx, player.ID, 40)
	if err != nil {
		t.Fatalf("Topup failed: %v", err)
	}
	if topup.BalanceAfter != 50 {
		t.Errorf("BalanceAfter = %d, want 50", topup.BalanceAfter)
	}
	if got := env.balance(t, player.ID); got != 50 {
		t.Errorf("balance = %d, want 50", got)
	}

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -1} {
			if _, err := service.Topup(ctx, player.ID, amount); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		if _, err := service.Topup(ctx, primitive.NewObjectID(), 10); !errors.Is(err, ErrPlayerNotFound) {
			t.Errorf("expected ErrPlayerNotFound, got %v", err)
		}
	})

	t.Run("history records every top-up", func(t *testing.T) {
		if _, err := service.Topup(ctx, player.ID, 5); err != nil {
			t.Fatalf("Topup failed: %v", err)
		}
		history, err := service.History(ctx, player.ID)
		if err != nil {
			t.Fatalf("History failed: %v", err)
		}
		if len(history) != 2 {
			t.Errorf("expected 2 history rows, got %d", len(history))
		}
	})
}
