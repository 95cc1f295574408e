package services

import (
	"context"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameService orchestrates the game lifecycle and cancellation compensation
type GameService interface {
	CreateGame(ctx context.Context, code string, spec map[string]interface{}) (*models.Game, error)
	StartGame(ctx context.Context, code string) error
	StopGame(ctx context.Context, code string) error
	FinishGame(ctx context.Context, code string) (*models.Game, error)
	CancelGame(ctx context.Context, code string) (*models.Game, error)
	SetPurchasingStopped(ctx context.Context, code string, stopped bool) (*models.Game, error)
	GetGame(ctx context.Context, code string) (*models.GameView, error)
	ListGames(ctx context.Context) ([]*models.GameView, error)
	GetAuditTrail(ctx context.Context, code string) ([]*models.AuditEvent, error)
}

// TicketService executes ticket purchases
type TicketService interface {
	Purchase(ctx context.Context, gameCode string, number int, playerID primitive.ObjectID) (*models.Ticket, error)
	GameTickets(ctx context.Context, gameCode string) ([]*models.Ticket, error)
	PlayerTickets(ctx context.Context, playerID primitive.ObjectID) ([]*models.Ticket, error)
}

// PrizeService awards prizes and drives the shipment status machine
type PrizeService interface {
	Award(ctx context.Context, gameCode string, ticketNumber int, prizeType, content string) (*models.Prize, error)
	NotifyShipment(ctx context.Context, prizeID, callerID primitive.ObjectID) (*models.Prize, error)
	SetShipmentStatus(ctx context.Context, prizeID primitive.ObjectID, target string) (*models.Prize, error)
	GamePrizes(ctx context.Context, gameCode string) ([]*models.Prize, error)
	PlayerPrizes(ctx context.Context, playerID primitive.ObjectID) ([]*models.Prize, error)
}

// AuthService issues credentials for players and operators
type AuthService interface {
	RegisterPlayer(ctx context.Context, req *models.RegisterRequest) (*models.Player, error)
	LoginPlayer(ctx context.Context, email, password string) (string, error)
	LoginOperator(ctx context.Context, email, password string) (string, error)
}

// PlayerService exposes player account reads
type PlayerService interface {
	GetPlayer(ctx context.Context, id primitive.ObjectID) (*models.Player, error)
}

// TopupService applies simulated balance top-ups
type TopupService interface {
	Topup(ctx context.Context, playerID primitive.ObjectID, amount int64) (*models.Topup, error)
	History(ctx context.Context, playerID primitive.ObjectID) ([]*models.Topup, error)
}
