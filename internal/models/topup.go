package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Topup records a simulated balance top-up. There is no payment gateway;
// the credit is applied directly and the row kept for the player's history.
type Topup struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PlayerID     primitive.ObjectID `bson:"playerId" json:"playerId"`
	Amount       int64              `bson:"amount" json:"amount"`
	BalanceAfter int64              `bson:"balanceAfter" json:"balanceAfter"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
