package mongodb

import (
	"context"
	"time"

	"github.com/rafflehouse/raffle-backend/internal/models"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure TopupRepository implements the interface
var _ repositories.TopupRepository = (*TopupRepository)(nil)

// TopupRepository handles MongoDB operations for Topup
type TopupRepository struct {
	collection *mongo.Collection
}

// NewTopupRepository creates a new TopupRepository
func NewTopupRepository(db *mongo.Database) *TopupRepository {
	return &TopupRepository{collection: db.Collection("topups")}
}

// Create inserts a new top-up record
func (r *TopupRepository) Create(ctx context.Context, topup *models.Topup) error {
	topup.ID = primitive.NewObjectID()
	topup.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, topup)
	return err
}

// FindByPlayerID retrieves a player's top-up history, newest first
func (r *TopupRepository) FindByPlayerID(ctx context.Context, playerID primitive.ObjectID) ([]*models.Topup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"playerId": playerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var topups []*models.Topup
	if err = cursor.All(ctx, &topups); err != nil {
		return nil, err
	}
	if topups == nil {
		topups = []*models.Topup{}
	}
	return topups, nil
}
