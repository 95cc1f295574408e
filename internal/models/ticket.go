package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket is a sold, numbered slot in a game. (gameCode, number) is unique;
// the price is captured at purchase time and never re-read from the game.
type Ticket struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameCode    string             `bson:"gameCode" json:"gameCode"`
	Number      int                `bson:"number" json:"number"`
	PlayerID    primitive.ObjectID `bson:"playerId" json:"playerId"`
	Price       int64              `bson:"price" json:"price"`
	PurchasedAt time.Time          `bson:"purchasedAt" json:"purchasedAt"`
}
