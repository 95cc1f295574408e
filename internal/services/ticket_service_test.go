package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rafflehouse/raffle-backend/internal/models"
)

func TestPurchase(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)

	t.Run("debits exactly the ticket price", func(t *testing.T) {
		player := env.newPlayer(t, 20)
		ticket, err := env.ticketService.Purchase(ctx, "G1", 1, player.ID)
		if err != nil {
			t.Fatalf("Purchase failed: %v", err)
		}
		if ticket.Price != 5 {
			t.Errorf("ticket price = %d, want 5", ticket.Price)
		}
		if got := env.balance(t, player.ID); got != 15 {
			t.Errorf("balance = %d, want 15", got)
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		player := env.newPlayer(t, 20)
		if _, err := env.ticketService.Purchase(ctx, "NOPE", 1, player.ID); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("expected ErrGameNotFound, got %v", err)
		}
	})

	t.Run("rejects out-of-range numbers", func(t *testing.T) {
		player := env.newPlayer(t, 20)
		for _, number := range []int{0, -1, 11} {
			if _, err := env.ticketService.Purchase(ctx, "G1", number, player.ID); !errors.Is(err, ErrInvalidTicketNumber) {
				t.Errorf("number %d: expected ErrInvalidTicketNumber, got %v", number, err)
			}
		}
		if got := env.balance(t, player.ID); got != 20 {
			t.Errorf("balance = %d, want 20 (no debit on rejection)", got)
		}
	})

	t.Run("a sold number stays sold", func(t *testing.T) {
		player := env.newPlayer(t, 20)
		if _, err := env.ticketService.Purchase(ctx, "G1", 1, player.ID); !errors.Is(err, ErrTicketAlreadySold) {
			t.Errorf("expected ErrTicketAlreadySold, got %v", err)
		}
		if got := env.balance(t, player.ID); got != 20 {
			t.Errorf("balance = %d, want 20 (no debit on rejection)", got)
		}
	})

	t.Run("insufficient balance", func(t *testing.T) {
		player := env.newPlayer(t, 4)
		if _, err := env.ticketService.Purchase(ctx, "G1", 2, player.ID); !errors.Is(err, ErrInsufficientBalance) {
			t.Errorf("expected ErrInsufficientBalance, got %v", err)
		}
		if got := env.balance(t, player.ID); got != 4 {
			t.Errorf("balance = %d, want 4", got)
		}
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		player := env.newPlayer(t, 5)
		if _, err := env.ticketService.Purchase(ctx, "G1", 2, player.ID); err != nil {
			t.Fatalf("Purchase failed: %v", err)
		}
		if got := env.balance(t, player.ID); got != 0 {
			t.Errorf("balance = %d, want 0", got)
		}
	})
}

func TestPurchaseWhilePurchasingStopped(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)

	if _, err := env.gameService.SetPurchasingStopped(ctx, "G1", true); err != nil {
		t.Fatalf("SetPurchasingStopped failed: %v", err)
	}
	if _, err := env.ticketService.Purchase(ctx, "G1", 1, player.ID); !errors.Is(err, ErrPurchasingClosed) {
		t.Errorf("expected ErrPurchasingClosed, got %v", err)
	}
	if got := env.balance(t, player.ID); got != 20 {
		t.Errorf("balance = %d, want 20", got)
	}
}

// TestPurchaseRace races many players for the same number. Exactly one may
// win, and every loser keeps their full balance.
func TestPurchaseRace(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)

	const contenders = 16
	players := make([]*models.Player, contenders)
	for i := range players {
		players[i] = env.newPlayer(t, 20)
	}

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = env.ticketService.Purchase(ctx, "G1", 7, players[i].ID)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range results {
		switch {
		case err == nil:
			winners++
			if got := env.balance(t, players[i].ID); got != 15 {
				t.Errorf("winner balance = %d, want 15", got)
			}
		case errors.Is(err, ErrTicketAlreadySold):
			if got := env.balance(t, players[i].ID); got != 20 {
				t.Errorf("loser balance = %d, want 20", got)
			}
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}
}

func TestPlayerTickets(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.newGame(t, "G1", 10, 5)
	player := env.newPlayer(t, 20)
	other := env.newPlayer(t, 20)

	for _, number := range []int{1, 2, 3} {
		if _, err := env.ticketService.Purchase(ctx, "G1", number, player.ID); err != nil {
			t.Fatalf("Purchase failed: %v", err)
		}
	}
	if _, err := env.ticketService.Purchase(ctx, "G1", 4, other.ID); err != nil {
		t.Fatalf("Purchase failed: %v", err)
	}

	tickets, err := env.ticketService.PlayerTickets(ctx, player.ID)
	if err != nil {
		t.Fatalf("PlayerTickets failed: %v", err)
	}
	if len(tickets) != 3 {
		t.Errorf("expected 3 tickets, got %d", len(tickets))
	}

	all, err := env.ticketService.GameTickets(ctx, "G1")
	if err != nil {
		t.Fatalf("GameTickets failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 tickets, got %d", len(all))
	}
}
