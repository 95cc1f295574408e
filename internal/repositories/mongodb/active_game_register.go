package mongodb

import (
	"context"
	"errors"

	"github.com/rafflehouse/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure ActiveGameRegister implements the interface
var _ repositories.ActiveGameRegister = (*ActiveGameRegister)(nil)

const registerID = "current"

type registerDoc struct {
	ID       string `bson:"_id"`
	GameCode string `bson:"gameCode"`
}

// ActiveGameRegister stores the single live game code in a one-document
// collection. All writes are conditional on the expected current value, so
// two concurrent starts cannot both claim the slot.
type ActiveGameRegister struct {
	collection *mongo.Collection
}

// NewActiveGameRegister creates a new ActiveGameRegister
func NewActiveGameRegister(db *mongo.Database) *ActiveGameRegister {
	return &ActiveGameRegister{collection: db.Collection("active_game")}
}

// Get returns the currently active game code, or "" when no game is active
func (r *ActiveGameRegister) Get(ctx context.Context) (string, error) {
	var doc registerDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": registerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.GameCode, nil
}

// CompareAndSet replaces the register value only if it currently equals
// expected. A missing document counts as "".
func (r *ActiveGameRegister) CompareAndSet(ctx context.Context, expected, next string) error {
	filter := bson.M{"_id": registerID, "gameCode": expected}
	update := bson.M{"$set": bson.M{"gameCode": next}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}
	if expected != "" {
		return repositories.ErrConflict
	}
	// No document yet. Insert one; a duplicate-key error means another
	// caller won the race.
	_, err = r.collection.InsertOne(ctx, registerDoc{ID: registerID, GameCode: next})
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrConflict
	}
	return err
}

// Clear empties the register only if it currently holds expected
func (r *ActiveGameRegister) Clear(ctx context.Context, expected string) error {
	return r.CompareAndSet(ctx, expected, "")
}
