package services

import (
	"context"
	"testing"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories/memory"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testEnv wires the services against in-memory storage
type testEnv struct {
	players  *memory.PlayerRepository
	games    *memory.GameRepository
	tickets  *memory.TicketRepository
	prizes   *memory.PrizeRepository
	register *memory.ActiveGameRegister
	audits   *memory.AuditEventRepository

	gameService   *GameServiceImpl
	ticketService *TicketServiceImpl
	prizeService  *PrizeServiceImpl
}

func newTestEnv() *testEnv {
	env := &testEnv{
		players:  memory.NewPlayerRepository(),
		games:    memory.NewGameRepository(),
		tickets:  memory.NewTicketRepository(),
		prizes:   memory.NewPrizeRepository(),
		register: memory.NewActiveGameRegister(),
		audits:   memory.NewAuditEventRepository(),
	}
	env.gameService = NewGameService(env.games, env.tickets, env.prizes, env.players, env.register, env.audits)
	env.ticketService = NewTicketService(env.games, env.tickets, env.players)
	env.prizeService = NewPrizeService(env.games, env.tickets, env.prizes, env.players)
	return env
}

func (env *testEnv) newPlayer(t *testing.T, balance int64) *models.Player {
	t.Helper()
	player := &models.Player{
		Email:   primitive.NewObjectID().Hex() + "@example.com",
		Balance: balance,
	}
	if err := env.players.Create(context.Background(), player); err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	return player
}

func (env *testEnv) newGame(t *testing.T, code string, tickets int, price int64) *models.Game {
	t.Helper()
	game, err := env.gameService.CreateGame(context.Background(), code, map[string]interface{}{
		models.SpecKeyTickets:     tickets,
		models.SpecKeyTicketPrice: price,
	})
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return game
}

func (env *testEnv) balance(t *testing.T, playerID primitive.ObjectID) int64 {
	t.Helper()
	player, err := env.players.FindByID(context.Background(), playerID)
	if err != nil {
		t.Fatalf("failed to load player: %v", err)
	}
	return player.Balance
}

func (env *testEnv) status(t *testing.T, code string) string {
	t.Helper()
	view, err := env.gameService.GetGame(context.Background(), code)
	if err != nil {
		t.Fatalf("failed to load game view: %v", err)
	}
	return view.Status
}
