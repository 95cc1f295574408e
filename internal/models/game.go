package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game statuses as derived on the read path. Liveness is never stored on the
// game record; it comes from the active-game register.
const (
	GameStatusPending  = "PENDING"
	GameStatusActive   = "ACTIVE"
	GameStatusFinished = "FINISHED"
	GameStatusCanceled = "CANCELED"
)

// Spec keys the engine interprets. Everything else in the spec map is
// operator-defined metadata and passes through untouched.
const (
	SpecKeyTickets     = "tickets"
	SpecKeyTicketPrice = "ticketPrice"
)

// Game represents one raffle round
type Game struct {
	ID                primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	Code              string                 `bson:"code" json:"code"`
	Spec              map[string]interface{} `bson:"spec" json:"spec"`
	FinishTime        *time.Time             `bson:"finishTime,omitempty" json:"finishTime,omitempty"`
	Canceled          bool                   `bson:"canceled" json:"canceled"`
	PurchasingStopped bool                   `bson:"purchasingStopped" json:"purchasingStopped"`
	CreatedAt         time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// TicketCount returns the configured number of tickets, or 0 when unset.
// Spec values round-trip through BSON, so numbers may come back as int32,
// int64 or float64.
func (g *Game) TicketCount() int {
	return int(specNumber(g.Spec[SpecKeyTickets]))
}

// TicketPrice returns the configured ticket price in whole currency units,
// or 0 when unset.
func (g *Game) TicketPrice() int64 {
	return specNumber(g.Spec[SpecKeyTicketPrice])
}

func specNumber(raw interface{}) int64 {
	switch v := raw.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// GameView is a game joined with its derived status for read responses.
type GameView struct {
	*Game
	Status string `json:"status"`
}
