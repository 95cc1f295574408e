package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit event types
const (
	AuditGameFinished      = "GAME_FINISHED"
	AuditGameCanceled      = "GAME_CANCELED"
	AuditCompensationError = "COMPENSATION_ERROR"
)

// AuditEvent is an operator-facing record of terminal game transitions and
// of compensation steps that failed during a cancel sweep. Compensation is
// best-effort; the audit trail is how partial failures surface.
type AuditEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type      string             `bson:"type" json:"type"`
	GameCode  string             `bson:"gameCode" json:"gameCode"`
	Detail    string             `bson:"detail" json:"detail"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
