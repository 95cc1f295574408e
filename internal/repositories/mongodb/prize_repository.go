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

// Compile-time check to ensure PrizeRepository implements the interface
var _ repositories.PrizeRepository = (*PrizeRepository)(nil)

// PrizeRepository handles MongoDB operations for Prize
type PrizeRepository struct {
	collection *mongo.Collection
}

// NewPrizeRepository creates a new PrizeRepository. The unique index backs
// up the award service's explicit one-prize-per-ticket check.
func NewPrizeRepository(db *mongo.Database) *PrizeRepository {
	collection := db.Collection("prizes")
	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "gameCode", Value: 1}, {Key: "ticketNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &PrizeRepository{collection: collection}
}

// Create inserts a new prize
func (r *PrizeRepository) Create(ctx context.Context, prize *models.Prize) error {
	prize.ID = primitive.NewObjectID()
	prize.AwardedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, prize)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

// FindByID finds a prize by ID
func (r *PrizeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error) {
	var prize models.Prize
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&prize)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prize, nil
}

// FindByGameAndTicket finds the prize awarded on a (game, ticket) pair
func (r *PrizeRepository) FindByGameAndTicket(ctx context.Context, gameCode string, ticketNumber int) (*models.Prize, error) {
	var prize models.Prize
	filter := bson.M{"gameCode": gameCode, "ticketNumber": ticketNumber}
	err := r.collection.FindOne(ctx, filter).Decode(&prize)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &prize, nil
}

// FindByGameCode retrieves all prizes awarded in a game
func (r *PrizeRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.Prize, error) {
	return r.find(ctx, bson.M{"gameCode": gameCode})
}

// FindByPlayerID retrieves all prizes owned by a player
func (r *PrizeRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Prize, error) {
	return r.find(ctx, bson.M{"playerId": playerID})
}

func (r *PrizeRepository) find(ctx context.Context, filter bson.M) ([]*models.Prize, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prizes []*models.Prize
	if err = cursor.All(ctx, &prizes); err != nil {
		return nil, err
	}
	if prizes == nil {
		prizes = []*models.Prize{}
	}
	return prizes, nil
}

// Update updates an existing prize
func (r *PrizeRepository) Update(ctx context.Context, prize *models.Prize) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": prize.ID}, bson.M{"$set": prize})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a prize by ID
func (r *PrizeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
