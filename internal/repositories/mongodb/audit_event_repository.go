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

// Compile-time check to ensure AuditEventRepository implements the interface
var _ repositories.AuditEventRepository = (*AuditEventRepository)(nil)

// AuditEventRepository handles MongoDB operations for AuditEvent
type AuditEventRepository struct {
	collection *mongo.Collection
}

// NewAuditEventRepository creates a new AuditEventRepository
func NewAuditEventRepository(db *mongo.Database) *AuditEventRepository {
	return &AuditEventRepository{collection: db.Collection("audit_events")}
}

// Create inserts a new audit event
func (r *AuditEventRepository) Create(ctx context.Context, event *models.AuditEvent) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindByGameCode retrieves the audit trail for a game, oldest first
func (r *AuditEventRepository) FindByGameCode(ctx context.Context, gameCode string) ([]*models.AuditEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"gameCode": gameCode}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*models.AuditEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.AuditEvent{}
	}
	return events, nil
}
