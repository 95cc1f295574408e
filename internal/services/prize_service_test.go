package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafflehouse/raffle-backend/internal/models"
)

func TestAwardCurrencyPrize(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)

	if _, err := env.ticketService.Purchase(ctx, "G1", 3, player.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}

	prize, err := env.prizeService.Award(ctx, "G1", 3, models.PrizeTypeCurrency, "8")
	if err != nil {
		t.Fatalf("Award failed: %v", err)
	}
	if prize.Amount != 8 {
		t.Errorf("prize amount = %d, want 8", prize.Amount)
	}
	if prize.ShipmentStatus != models.ShipmentStatusShipped {
		t.Errorf("currency prize status = %s, want %s", prize.ShipmentStatus, models.ShipmentStatusShipped)
	}
	if got := env.balance(t, player.ID); got != 23 {
		t.Errorf("balance = %d, want 23 (15 after purchase plus 8)", got)
	}

	t.Run("one prize per ticket", func(t *testing.T) {
		if _, err := env.prizeService.Award(ctx, "G1", 3, models.PrizeTypeCurrency, "100"); !errors.Is(err, ErrPrizeAlreadyAwarded) {
			t.Errorf("expected ErrPrizeAlreadyAwarded, got %v", err)
		}
		if got := env.balance(t, player.ID); got != 23 {
			t.Errorf("balance = %d, want 23 (rejected award must not pay)", got)
		}
	})
}

func TestAwardCurrencyRejectsBadAmounts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)
	if _, err := env.ticketService.Purchase(ctx, "G1", 1, player.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}

	for _, content := range []string{"", "abc", "-5", "0", "1.5"} {
		if _, err := env.prizeService.Award(ctx, "G1", 1, models.PrizeTypeCurrency, content); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("content %q: expected ErrInvalidAmount, got %v", content, err)
		}
	}
	if got := env.balance(t, player.ID); got != 15 {
		t.Errorf("balance = %d, want 15 (no credit on rejection)", got)
	}
}

func TestAwardPhysicalPrize(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)
	if _, err := env.ticketService.Purchase(ctx, "G1", 2, player.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}

	prize, err := env.prizeService.Award(ctx, "G1", 2, models.PrizeTypePhysical, "A teapot")
	if err != nil {
		t.Fatalf("Award failed: %v", err)
	}
	if prize.ShipmentStatus != models.ShipmentStatusPending {
		t.Errorf("physical prize status = %s, want %s", prize.ShipmentStatus, models.ShipmentStatusPending)
	}
	if got := env.balance(t, player.ID); got != 15 {
		t.Errorf("balance = %d, want 15 (physical prizes never credit)", got)
	}
}

func TestAwardValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)
	if _, err := env.ticketService.Purchase(ctx, "G1", 1, player.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}

	t.Run("unknown game", func(t *testing.T) {
		if _, err := env.prizeService.Award(ctx, "NOPE", 1, models.PrizeTypeCurrency, "5"); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("expected ErrGameNotFound, got %v", err)
		}
	})

	t.Run("unsold ticket", func(t *testing.T) {
		if _, err := env.prizeService.Award(ctx, "G1", 9, models.PrizeTypeCurrency, "5"); !errors.Is(err, ErrTicketNotFound) {
			t.Errorf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("unknown prize type", func(t *testing.T) {
		if _, err := env.prizeService.Award(ctx, "G1", 1, "GIFT_CARD", "5"); !errors.Is(err, ErrInvalidPrizeType) {
			t.Errorf("expected ErrInvalidPrizeType, got %v", err)
		}
	})
}

func TestNotifyShipment(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	owner := env.newPlayer(t, 20)
	stranger := env.newPlayer(t, 20)

	if _, err := env.ticketService.Purchase(ctx, "G1", 1, owner.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}
	prize, err := env.prizeService.Award(ctx, "G1", 1, models.PrizeTypePhysical, "A teapot")
	if err != nil {
		t.Fatalf("Award failed: %v", err)
	}

	t.Run("only the owner may notify", func(t *testing.T) {
		if _, err := env.prizeService.NotifyShipment(ctx, prize.ID, stranger.ID); !errors.Is(err, ErrNotPrizeOwner) {
			t.Errorf("expected ErrNotPrizeOwner, got %v", err)
		}
	})

	updated, err := env.prizeService.NotifyShipment(ctx, prize.ID, owner.ID)
	if err != nil {
		t.Fatalf("NotifyShipment failed: %v", err)
	}
	if updated.ShipmentStatus != models.ShipmentStatusNotified {
		t.Errorf("status = %s, want %s", updated.ShipmentStatus, models.ShipmentStatusNotified)
	}

	t.Run("notify is single-shot", func(t *testing.T) {
		if _, err := env.prizeService.NotifyShipment(ctx, prize.ID, owner.ID); !errors.Is(err, ErrWrongShipmentStatus) {
			t.Errorf("expected ErrWrongShipmentStatus, got %v", err)
		}
	})

	t.Run("currency prizes have no shipment workflow", func(t *testing.T) {
		if _, err := env.ticketService.Purchase(ctx, "G1", 2, owner.ID); err != nil {
			t.Fatalf("Purchase failed: %v", err)
		}
		currency, err := env.prizeService.Award(ctx, "G1", 2, models.PrizeTypeCurrency, "5")
		if err != nil {
			t.Fatalf("Award failed: %v", err)
		}
		if _, err := env.prizeService.NotifyShipment(ctx, currency.ID, owner.ID); !errors.Is(err, ErrWrongPrizeType) {
			t.Errorf("expected ErrWrongPrizeType, got %v", err)
		}
	})
}

func TestSetShipmentStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	owner := env.newPlayer(t, 20)

	if _, err := env.ticketService.Purchase(ctx, "G1", 1, owner.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}
	prize, err := env.prizeService.Award(ctx, "G1", 1, models.PrizeTypePhysical, "A teapot")
	if err != nil {
		t.Fatalf("Award failed: %v", err)
	}

	t.Run("pending cannot ship directly", func(t *testing.T) {
		if _, err := env.prizeService.SetShipmentStatus(ctx, prize.ID, models.ShipmentStatusShipped); !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Errorf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	if _, err := env.prizeService.NotifyShipment(ctx, prize.ID, owner.ID); err != nil {
		t.Fatalf("NotifyShipment failed: %v", err)
	}

	updated, err := env.prizeService.SetShipmentStatus(ctx, prize.ID, models.ShipmentStatusShipped)
	if err != nil {
		t.Fatalf("SetShipmentStatus failed: %v", err)
	}
	if updated.ShipmentStatus != models.ShipmentStatusShipped {
		t.Errorf("status = %s, want %s", updated.ShipmentStatus, models.ShipmentStatusShipped)
	}

	t.Run("shipped can be reverted to notified", func(t *testing.T) {
		reverted, err := env.prizeService.SetShipmentStatus(ctx, prize.ID, models.ShipmentStatusNotified)
		if err != nil {
			t.Fatalf("SetShipmentStatus failed: %v", err)
		}
		if reverted.ShipmentStatus != models.ShipmentStatusNotified {
			t.Errorf("status = %s, want %s", reverted.ShipmentStatus, models.ShipmentStatusNotified)
		}
	})

	t.Run("cannot move back to pending", func(t *testing.T) {
		if _, err := env.prizeService.SetShipmentStatus(ctx, prize.ID, models.ShipmentStatusPending); !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Errorf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})

	t.Run("currency prizes never move", func(t *testing.T) {
		if _, err := env.ticketService.Purchase(ctx, "G1", 2, owner.ID); err != nil {
			t.Fatalf("Purchase failed: %v", err)
		}
		currency, err := env.prizeService.Award(ctx, "G1", 2, models.PrizeTypeCurrency, "5")
		if err != nil {
			t.Fatalf("Award failed: %v", err)
		}
		if _, err := env.prizeService.SetShipmentStatus(ctx, currency.ID, models.ShipmentStatusNotified); !errors.Is(err, ErrInvalidShipmentStatus) {
			t.Errorf("expected ErrInvalidShipmentStatus, got %v", err)
		}
	})
}
