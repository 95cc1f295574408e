package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"github.com/rafflehouse/raffle-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure GameServiceImpl implements GameService
var _ GameService = (*GameServiceImpl)(nil)

const generatedCodeLength = 6

// GameServiceImpl orchestrates game lifecycle transitions against the game
// registry and the active-game register, and runs the cancellation
// compensation sweep.
type GameServiceImpl struct {
	gameRepo   repositories.GameRepository
	ticketRepo repositories.TicketRepository
	prizeRepo  repositories.PrizeRepository
	playerRepo repositories.PlayerRepository
	activeGame repositories.ActiveGameRegister
	auditRepo  repositories.AuditEventRepository
}

// NewGameService creates a new GameServiceImpl
func NewGameService(
	gameRepo repositories.GameRepository,
	ticketRepo repositories.TicketRepository,
	prizeRepo repositories.PrizeRepository,
	playerRepo repositories.PlayerRepository,
	activeGame repositories.ActiveGameRegister,
	auditRepo repositories.AuditEventRepository,
) *GameServiceImpl {
	return &GameServiceImpl{
		gameRepo:   gameRepo,
		ticketRepo: ticketRepo,
		prizeRepo:  prizeRepo,
		playerRepo: playerRepo,
		activeGame: activeGame,
		auditRepo:  auditRepo,
	}
}

// CreateGame creates a new game in pending state. When code is empty a
// random one is generated; a caller-supplied code that already exists is
// rejected.
func (s *GameServiceImpl) CreateGame(ctx context.Context, code string, spec map[string]interface{}) (*models.Game, error) {
	if spec == nil {
		spec = map[string]interface{}{}
	}

	generated := code == ""
	for attempt := 0; ; attempt++ {
		if generated {
			code = utils.GenerateGameCode(generatedCodeLength)
		}
		game := &models.Game{Code: code, Spec: spec}
		err := s.gameRepo.Create(ctx, game)
		if err == nil {
			slog.Info("Game created", "code", game.Code, "gameId", game.ID)
			return game, nil
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			if generated && attempt < 4 {
				continue // collision on a random code, roll again
			}
			return nil, ErrDuplicateCode
		}
		slog.Error("Failed to create game", "error", err, "code", code)
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
}

// StartGame marks a game as the single live game by claiming the
// active-game register. The game record itself is not mutated.
func (s *GameServiceImpl) StartGame(ctx context.Context, code string) error {
	game, err := s.findGame(ctx, code)
	if err != nil {
		return err
	}
	if game.Canceled || game.FinishTime != nil {
		return ErrGameTerminal
	}

	// The register is claimed with a compare-and-set against "no active
	// game", never a blind overwrite.
	err = s.activeGame.CompareAndSet(ctx, "", code)
	if errors.Is(err, repositories.ErrConflict) {
		slog.Warn("Start rejected, register already occupied", "code", code)
		return ErrGameAlreadyActive
	}
	if err != nil {
		slog.Error("Failed to claim active-game register", "error", err, "code", code)
		return fmt.Errorf("failed to claim active-game register: %w", err)
	}
	slog.Info("Game started", "code", code)
	return nil
}

// StopGame clears the active-game register without touching the game
// record. This is a pause primitive, distinct from FinishGame.
func (s *GameServiceImpl) StopGame(ctx context.Context, code string) error {
	if _, err := s.findGame(ctx, code); err != nil {
		return err
	}
	err := s.activeGame.Clear(ctx, code)
	if errors.Is(err, repositories.ErrConflict) {
		return ErrGameNotActive
	}
	if err != nil {
		slog.Error("Failed to clear active-game register", "error", err, "code", code)
		return fmt.Errorf("failed to clear active-game register: %w", err)
	}
	slog.Info("Game stopped", "code", code)
	return nil
}

// FinishGame ends the active game. Terminal: a finished game can never
// become active again.
func (s *GameServiceImpl) FinishGame(ctx context.Context, code string) (*models.Game, error) {
	game, err := s.findGame(ctx, code)
	if err != nil {
		return nil, err
	}
	current, err := s.activeGame.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read active-game register: %w", err)
	}
	if s.deriveStatus(game, current) != models.GameStatusActive {
		return nil, ErrGameNotActive
	}

	now := time.Now()
	game.FinishTime = &now
	if err := s.gameRepo.Update(ctx, game); err != nil {
		slog.Error("Failed to persist finish time", "error", err, "code", code)
		return nil, fmt.Errorf("failed to finish game: %w", err)
	}

	if err := s.activeGame.Clear(ctx, code); err != nil && !errors.Is(err, repositories.ErrConflict) {
		// The game is finished but the register still names it; a stop
		// call recovers the register.
		slog.Error("Failed to clear active-game register after finish", "error", err, "code", code)
		return game, fmt.Errorf("failed to clear active-game register: %w", err)
	}

	s.audit(ctx, models.AuditGameFinished, code, "game finished")
	slog.Info("Game finished", "code", code)
	return game, nil
}

// CancelGame cancels a game, reversing every ticket purchase and every
// awarded prize. Compensation is best-effort: per-row failures are logged
// and audited but never block the cancel itself, so a game cannot be
// stranded by a single unreachable player record. Terminal.
func (s *GameServiceImpl) CancelGame(ctx context.Context, code string) (*models.Game, error) {
	game, err := s.findGame(ctx, code)
	if err != nil {
		return nil, err
	}
	if game.Canceled || game.FinishTime != nil {
		return nil, ErrGameTerminal
	}

	current, err := s.activeGame.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read active-game register: %w", err)
	}
	if current == code {
		if err := s.activeGame.Clear(ctx, code); err != nil && !errors.Is(err, repositories.ErrConflict) {
			slog.Error("Failed to clear active-game register during cancel", "error", err, "code", code)
			s.audit(ctx, models.AuditCompensationError, code, "register clear failed: "+err.Error())
		}
	}

	s.compensate(ctx, code)

	game.Canceled = true
	if err := s.gameRepo.Update(ctx, game); err != nil {
		slog.Error("Failed to mark game canceled", "error", err, "code", code)
		return nil, fmt.Errorf("failed to mark game canceled: %w", err)
	}

	s.audit(ctx, models.AuditGameCanceled, code, "game canceled, compensation executed")
	slog.Info("Game canceled", "code", code)
	return game, nil
}

// compensate walks the prize and ticket ledgers for a game and reverses
// their balance effects. Two independent sweeps, each row best-effort: a
// failure on one row must not stop the rest, and must not stop the cancel.
func (s *GameServiceImpl) compensate(ctx context.Context, code string) {
	prizes, err := s.prizeRepo.FindByGameCode(ctx, code)
	if err != nil {
		slog.Error("Compensation: failed to list prizes", "error", err, "code", code)
		s.audit(ctx, models.AuditCompensationError, code, "prize sweep listing failed: "+err.Error())
		prizes = nil
	}
	for _, prize := range prizes {
		if prize.Type == models.PrizeTypeCurrency {
			if err := s.adjustBalance(ctx, prize.PlayerID, -prize.Amount); err != nil {
				slog.Error("Compensation: failed to revoke currency prize", "error", err,
					"code", code, "ticket", prize.TicketNumber, "amount", prize.Amount)
				s.audit(ctx, models.AuditCompensationError, code,
					fmt.Sprintf("revoke of %d on ticket %d failed: %s", prize.Amount, prize.TicketNumber, err))
			}
		}
		// The row goes away even when the balance reversal failed; the
		// audit trail carries the discrepancy.
		if err := s.prizeRepo.Delete(ctx, prize.ID); err != nil {
			slog.Error("Compensation: failed to delete prize row", "error", err, "code", code, "prizeId", prize.ID)
			s.audit(ctx, models.AuditCompensationError, code, "prize row delete failed: "+err.Error())
		}
	}

	tickets, err := s.ticketRepo.FindByGameCode(ctx, code)
	if err != nil {
		slog.Error("Compensation: failed to list tickets", "error", err, "code", code)
		s.audit(ctx, models.AuditCompensationError, code, "ticket sweep listing failed: "+err.Error())
		tickets = nil
	}
	for _, ticket := range tickets {
		if err := s.adjustBalance(ctx, ticket.PlayerID, ticket.Price); err != nil {
			slog.Error("Compensation: failed to refund ticket", "error", err,
				"code", code, "ticket", ticket.Number, "price", ticket.Price)
			s.audit(ctx, models.AuditCompensationError, code,
				fmt.Sprintf("refund of %d on ticket %d failed: %s", ticket.Price, ticket.Number, err))
		}
		if err := s.ticketRepo.Delete(ctx, ticket.ID); err != nil {
			slog.Error("Compensation: failed to delete ticket row", "error", err, "code", code, "ticketId", ticket.ID)
			s.audit(ctx, models.AuditCompensationError, code, "ticket row delete failed: "+err.Error())
		}
	}
}

func (s *GameServiceImpl) adjustBalance(ctx context.Context, playerID primitive.ObjectID, delta int64) error {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return err
	}
	player.Balance += delta
	return s.playerRepo.Update(ctx, player)
}

// SetPurchasingStopped toggles the purchasing pause flag. A no-op toggle is
// rejected so callers always observe current state first.
func (s *GameServiceImpl) SetPurchasingStopped(ctx context.Context, code string, stopped bool) (*models.Game, error) {
	game, err := s.findGame(ctx, code)
	if err != nil {
		return nil, err
	}
	if game.PurchasingStopped == stopped {
		return nil, ErrPurchasingNoOp
	}
	game.PurchasingStopped = stopped
	if err := s.gameRepo.Update(ctx, game); err != nil {
		slog.Error("Failed to update purchasing flag", "error", err, "code", code)
		return nil, fmt.Errorf("failed to update purchasing flag: %w", err)
	}
	slog.Info("Purchasing flag updated", "code", code, "stopped", stopped)
	return game, nil
}

// GetGame returns a game with its derived status
func (s *GameServiceImpl) GetGame(ctx context.Context, code string) (*models.GameView, error) {
	game, err := s.findGame(ctx, code)
	if err != nil {
		return nil, err
	}
	current, err := s.activeGame.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read active-game register: %w", err)
	}
	return &models.GameView{Game: game, Status: s.deriveStatus(game, current)}, nil
}

// ListGames returns all games with derived statuses
func (s *GameServiceImpl) ListGames(ctx context.Context) ([]*models.GameView, error) {
	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	current, err := s.activeGame.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read active-game register: %w", err)
	}
	views := make([]*models.GameView, 0, len(games))
	for _, game := range games {
		views = append(views, &models.GameView{Game: game, Status: s.deriveStatus(game, current)})
	}
	return views, nil
}

// GetAuditTrail returns the audit events recorded for a game
func (s *GameServiceImpl) GetAuditTrail(ctx context.Context, code string) ([]*models.AuditEvent, error) {
	if _, err := s.findGame(ctx, code); err != nil {
		return nil, err
	}
	return s.auditRepo.FindByGameCode(ctx, code)
}

// deriveStatus recomputes the display status on every read. Liveness is
// decoupled from the record on purpose: the register is the single source
// of truth for which one game is live.
func (s *GameServiceImpl) deriveStatus(game *models.Game, activeCode string) string {
	switch {
	case game.Canceled:
		return models.GameStatusCanceled
	case game.FinishTime != nil:
		return models.GameStatusFinished
	case activeCode != "" && activeCode == game.Code:
		return models.GameStatusActive
	default:
		return models.GameStatusPending
	}
}

func (s *GameServiceImpl) findGame(ctx context.Context, code string) (*models.Game, error) {
	game, err := s.gameRepo.FindByCode(ctx, code)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		slog.Error("Failed to load game", "error", err, "code", code)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

func (s *GameServiceImpl) audit(ctx context.Context, eventType, code, detail string) {
	event := &models.AuditEvent{Type: eventType, GameCode: code, Detail: detail}
	if err := s.auditRepo.Create(ctx, event); err != nil {
		slog.Error("Failed to write audit event", "error", err, "type", eventType, "code", code)
	}
}
