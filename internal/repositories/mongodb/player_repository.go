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

// Compile-time check to ensure PlayerRepository implements the interface
var _ repositories.PlayerRepository = (*PlayerRepository)(nil)

// PlayerRepository handles MongoDB operations for Player
type PlayerRepository struct {
	collection *mongo.Collection
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	collection := db.Collection("players")
	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &PlayerRepository{collection: collection}
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	player.ID = primitive.NewObjectID()
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, player)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

// FindByID finds a player by ID
func (r *PlayerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	var player models.Player
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindByEmail finds a player by email
func (r *PlayerRepository) FindByEmail(ctx context.Context, email string) (*models.Player, error) {
	var player models.Player
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&player)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Update updates an existing player
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	player.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": player.ID}, bson.M{"$set": player})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
