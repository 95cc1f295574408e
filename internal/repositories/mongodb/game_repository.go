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

// Compile-time check to ensure GameRepository implements the interface
var _ repositories.GameRepository = (*GameRepository)(nil)

// GameRepository handles MongoDB operations for Game
type GameRepository struct {
	collection *mongo.Collection
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *mongo.Database) *GameRepository {
	collection := db.Collection("games")
	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &GameRepository{collection: collection}
}

// Create inserts a new game
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, game)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

// FindByID finds a game by ID
func (r *GameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	var game models.Game
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindByCode finds a game by its public code
func (r *GameRepository) FindByCode(ctx context.Context, code string) (*models.Game, error) {
	var game models.Game
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindAll retrieves all games, newest first
func (r *GameRepository) FindAll(ctx context.Context) ([]*models.Game, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []*models.Game
	if err = cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []*models.Game{}
	}
	return games, nil
}

// Update updates an existing game
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": game.ID}, bson.M{"$set": game})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete deletes a game by ID
func (r *GameRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
