package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure TicketRepository implements the interface
var _ repositories.TicketRepository = (*TicketRepository)(nil)

// TicketRepository handles MongoDB operations for Ticket
type TicketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository creates a new TicketRepository. The unique compound
// index on (gameCode, number) is what serializes concurrent purchases of the
// same ticket: the later insert fails with a duplicate-key error.
func NewTicketRepository(db *mongo.Database) *TicketRepository {
	collection := db.Collection("tickets")
	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "gameCode", Value: 1}, {Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &TicketRepository{collection: collection}
}

// Create inserts a new ticket
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	ticket.ID = primitive.NewObjectID()
	ticket.PurchasedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, ticket)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

// FindByGameAndNumber finds the ticket sold for a (game, number) pair
func (r *TicketRepository) FindByGameAndNumber(ctx context.Context, gameCode string, number int) (*models.Ticket, error) {
	var ticket models.Ticket
	filter := bson.M{"gameCode": gameCode, "number": number}
	err := r.collection.FindOne(ctx, filter).Decode(&ticket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindByGameCode retrieves all tickets sold for a game
func (r *TicketRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.Ticket, error) {
	return r.find(ctx, bson.M{"gameCode": gameCode})
}

// FindByPlayerID retrieves all tickets owned by a player
func (r *TicketRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Ticket, error) {
	return r.find(ctx, bson.M{"playerId": playerID})
}

func (r *TicketRepository) find(ctx context.Context, filter bson.M) ([]*models.Ticket, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err = cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	return tickets, nil
}

// Delete deletes a ticket by ID
func (r *TicketRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
