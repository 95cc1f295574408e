package repositories

import (
	"context"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error)
	FindByEmail(ctx context.Context, email string) (*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
}

// GameRepository defines the interface for game data operations
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error)
	FindByCode(ctx context.Context, code string) (*models.Game, error)
	FindAll(ctx context.Context) ([]*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TicketRepository defines the interface for ticket data operations.
// Create must enforce uniqueness of (gameCode, number) and return
// ErrDuplicateKey on a clash; that constraint is the arbiter between
// concurrent purchases of the same ticket.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByGameAndNumber(ctx context.Context, gameCode string, number int) (*models.Ticket, error)
	FindByGameCode(ctx context.Context, gameCode string) ([]*models.Ticket, error)
	FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Ticket, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PrizeRepository defines the interface for prize data operations
type PrizeRepository interface {
	Create(ctx context.Context, prize *models.Prize) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error)
	FindByGameAndTicket(ctx context.Context, gameCode string, ticketNumber int) (*models.Prize, error)
	FindByGameCode(ctx context.Context, gameCode string) ([]*models.Prize, error)
	FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Prize, error)
	Update(ctx context.Context, prize *models.Prize) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ActiveGameRegister is the single-slot register naming the one live game
// code. The empty string means no game is active. CompareAndSet must be
// atomic with respect to concurrent callers: a blind overwrite would let two
// concurrent starts both succeed.
type ActiveGameRegister interface {
	Get(ctx context.Context) (string, error)
	CompareAndSet(ctx context.Context, expected, next string) error
	Clear(ctx context.Context, expected string) error
}

// OperatorRepository defines the interface for operator account operations
type OperatorRepository interface {
	Create(ctx context.Context, operator *models.Operator) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Operator, error)
	FindByEmail(ctx context.Context, email string) (*models.Operator, error)
}

// TopupRepository defines the interface for top-up history operations
type TopupRepository interface {
	Create(ctx context.Context, topup *models.Topup) error
	FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Topup, error)
}

// AuditEventRepository defines the interface for audit trail operations
type AuditEventRepository interface {
	Create(ctx context.Context, event *models.AuditEvent) error
	FindByGameCode(ctx context.Context, gameCode string) ([]*models.AuditEvent, error)
}
