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

// Compile-time check to ensure OperatorRepository implements the interface
var _ repositories.OperatorRepository = (*OperatorRepository)(nil)

// OperatorRepository handles MongoDB operations for Operator
type OperatorRepository struct {
	collection *mongo.Collection
}

// NewOperatorRepository creates a new OperatorRepository
func NewOperatorRepository(db *mongo.Database) *OperatorRepository {
	collection := db.Collection("operators")
	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &OperatorRepository{collection: collection}
}

// Create inserts a new operator
func (r *OperatorRepository) Create(ctx context.Context, operator *models.Operator) error {
	operator.ID = primitive.NewObjectID()
	operator.CreatedAt = time.Now()
	operator.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, operator)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateKey
	}
	return err
}

// FindByID finds an operator by ID
func (r *OperatorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Operator, error) {
	var operator models.Operator
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&operator)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// FindByEmail finds an operator by email
func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*models.Operator, error) {
	var operator models.Operator
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&operator)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &operator, nil
}
