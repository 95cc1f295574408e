// Package memory provides mutex-guarded in-memory implementations of the
// storage interfaces. They back the service tests and local development
// without a MongoDB instance, and honor the same uniqueness and
// compare-and-set contracts as the mongodb package.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time checks
var (
	_ repositories.PlayerRepository     = (*PlayerRepository)(nil)
	_ repositories.GameRepository       = (*GameRepository)(nil)
	_ repositories.TicketRepository     = (*TicketRepository)(nil)
	_ repositories.PrizeRepository      = (*PrizeRepository)(nil)
	_ repositories.ActiveGameRegister   = (*ActiveGameRegister)(nil)
	_ repositories.OperatorRepository   = (*OperatorRepository)(nil)
	_ repositories.TopupRepository      = (*TopupRepository)(nil)
	_ repositories.AuditEventRepository = (*AuditEventRepository)(nil)
)

// PlayerRepository is an in-memory PlayerRepository
type PlayerRepository struct {
	mu      sync.RWMutex
	players map[primitive.ObjectID]models.Player
}

// NewPlayerRepository creates a new in-memory PlayerRepository
func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{players: make(map[primitive.ObjectID]models.Player)}
}

func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Email == player.Email {
			return repositories.ErrDuplicateKey
		}
	}
	player.ID = primitive.NewObjectID()
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	r.players[player.ID] = *player
	return nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *PlayerRepository) FindByEmail(ctx context.Context, email string) (*models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrNotFound
	}
	player.UpdatedAt = time.Now()
	r.players[player.ID] = *player
	return nil
}

// GameRepository is an in-memory GameRepository
type GameRepository struct {
	mu    sync.RWMutex
	games map[primitive.ObjectID]models.Game
}

// NewGameRepository creates a new in-memory GameRepository
func NewGameRepository() *GameRepository {
	return &GameRepository{games: make(map[primitive.ObjectID]models.Game)}
}

func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.games {
		if g.Code == game.Code {
			return repositories.ErrDuplicateKey
		}
	}
	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	r.games[game.ID] = *game
	return nil
}

func (r *GameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &g, nil
}

func (r *GameRepository) FindByCode(ctx context.Context, code string) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.games {
		if g.Code == code {
			cp := g
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *GameRepository) FindAll(ctx context.Context) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := make([]*models.Game, 0, len(r.games))
	for _, g := range r.games {
		cp := g
		games = append(games, &cp)
	}
	return games, nil
}

func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[game.ID]; !ok {
		return repositories.ErrNotFound
	}
	game.UpdatedAt = time.Now()
	r.games[game.ID] = *game
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
	return nil
}

// TicketRepository is an in-memory TicketRepository. The check-and-insert in
// Create runs under the write lock, which is the per-key critical section
// that keeps a ticket from being sold twice.
type TicketRepository struct {
	mu      sync.RWMutex
	tickets map[primitive.ObjectID]models.Ticket
	byKey   map[string]primitive.ObjectID
}

// NewTicketRepository creates a new in-memory TicketRepository
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		tickets: make(map[primitive.ObjectID]models.Ticket),
		byKey:   make(map[string]primitive.ObjectID),
	}
}

func ticketKey(gameCode string, number int) string {
	return fmt.Sprintf("%s#%d", gameCode, number)
}

func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ticketKey(ticket.GameCode, ticket.Number)
	if _, ok := r.byKey[key]; ok {
		return repositories.ErrDuplicateKey
	}
	ticket.ID = primitive.NewObjectID()
	ticket.PurchasedAt = time.Now()
	r.tickets[ticket.ID] = *ticket
	r.byKey[key] = ticket.ID
	return nil
}

func (r *TicketRepository) FindByGameAndNumber(ctx context.Context, gameCode string, number int) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[ticketKey(gameCode, number)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	t := r.tickets[id]
	return &t, nil
}

func (r *TicketRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickets := []*models.Ticket{}
	for _, t := range r.tickets {
		if t.GameCode == gameCode {
			cp := t
			tickets = append(tickets, &cp)
		}
	}
	return tickets, nil
}

func (r *TicketRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickets := []*models.Ticket{}
	for _, t := range r.tickets {
		if t.PlayerID == playerID {
			cp := t
			tickets = append(tickets, &cp)
		}
	}
	return tickets, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil
	}
	delete(r.byKey, ticketKey(t.GameCode, t.Number))
	delete(r.tickets, id)
	return nil
}

// PrizeRepository is an in-memory PrizeRepository
type PrizeRepository struct {
	mu     sync.RWMutex
	prizes map[primitive.ObjectID]models.Prize
}

// NewPrizeRepository creates a new in-memory PrizeRepository
func NewPrizeRepository() *PrizeRepository {
	return &PrizeRepository{prizes: make(map[primitive.ObjectID]models.Prize)}
}

func (r *PrizeRepository) Create(ctx context.Context, prize *models.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prizes {
		if p.GameCode == prize.GameCode && p.TicketNumber == prize.TicketNumber {
			return repositories.ErrDuplicateKey
		}
	}
	prize.ID = primitive.NewObjectID()
	prize.AwardedAt = time.Now()
	r.prizes[prize.ID] = *prize
	return nil
}

func (r *PrizeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prizes[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r *PrizeRepository) FindByGameAndTicket(ctx context.Context, gameCode string, ticketNumber int) (*models.Prize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.prizes {
		if p.GameCode == gameCode && p.TicketNumber == ticketNumber {
			cp := p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *PrizeRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.Prize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prizes := []*models.Prize{}
	for _, p := range r.prizes {
		if p.GameCode == gameCode {
			cp := p
			prizes = append(prizes, &cp)
		}
	}
	return prizes, nil
}

func (r *PrizeRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Prize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prizes := []*models.Prize{}
	for _, p := range r.prizes {
		if p.PlayerID == playerID {
			cp := p
			prizes = append(prizes, &cp)
		}
	}
	return prizes, nil
}

func (r *PrizeRepository) Update(ctx context.Context, prize *models.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prizes[prize.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.prizes[prize.ID] = *prize
	return nil
}

func (r *PrizeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prizes, id)
	return nil
}

// ActiveGameRegister is an in-memory single-slot register
type ActiveGameRegister struct {
	mu   sync.Mutex
	code string
}

// NewActiveGameRegister creates a new in-memory ActiveGameRegister
func NewActiveGameRegister() *ActiveGameRegister {
	return &ActiveGameRegister{}
}

func (r *ActiveGameRegister) Get(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code, nil
}

func (r *ActiveGameRegister) CompareAndSet(ctx context.Context, expected, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.code != expected {
		return repositories.ErrConflict
	}
	r.code = next
	return nil
}

func (r *ActiveGameRegister) Clear(ctx context.Context, expected string) error {
	return r.CompareAndSet(ctx, expected, "")
}

// OperatorRepository is an in-memory OperatorRepository
type OperatorRepository struct {
	mu        sync.RWMutex
	operators map[primitive.ObjectID]models.Operator
}

// NewOperatorRepository creates a new in-memory OperatorRepository
func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{operators: make(map[primitive.ObjectID]models.Operator)}
}

func (r *OperatorRepository) Create(ctx context.Context, operator *models.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.operators {
		if o.Email == operator.Email {
			return repositories.ErrDuplicateKey
		}
	}
	operator.ID = primitive.NewObjectID()
	operator.CreatedAt = time.Now()
	operator.UpdatedAt = time.Now()
	r.operators[operator.ID] = *operator
	return nil
}

func (r *OperatorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.operators[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &o, nil
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*models.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.operators {
		if o.Email == email {
			cp := o
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// TopupRepository is an in-memory TopupRepository
type TopupRepository struct {
	mu     sync.RWMutex
	topups []models.Topup
}

// NewTopupRepository creates a new in-memory TopupRepository
func NewTopupRepository() *TopupRepository {
	return &TopupRepository{}
}

func (r *TopupRepository) Create(ctx context.Context, topup *models.Topup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	topup.ID = primitive.NewObjectID()
	topup.CreatedAt = time.Now()
	r.topups = append(r.topups, *topup)
	return nil
}

func (r *TopupRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Topup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	topups := []*models.Topup{}
	for i := range r.topups {
		if r.topups[i].PlayerID == playerID {
			cp := r.topups[i]
			topups = append(topups, &cp)
		}
	}
	return topups, nil
}

// AuditEventRepository is an in-memory AuditEventRepository
type AuditEventRepository struct {
	mu     sync.RWMutex
	events []models.AuditEvent
}

// NewAuditEventRepository creates a new in-memory AuditEventRepository
func NewAuditEventRepository() *AuditEventRepository {
	return &AuditEventRepository{}
}

func (r *AuditEventRepository) Create(ctx context.Context, event *models.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	r.events = append(r.events, *event)
	return nil
}

func (r *AuditEventRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.AuditEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := []*models.AuditEvent{}
	for i := range r.events {
		if r.events[i].GameCode == gameCode {
			cp := r.events[i]
			events = append(events, &cp)
		}
	}
	return events, nil
}
