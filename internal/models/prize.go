package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prize types
const (
	PrizeTypeCurrency = "CURRENCY"
	PrizeTypePhysical = "PHYSICAL"
)

// Shipment statuses. Currency prizes are created SHIPPED and never move.
// Physical prizes walk PENDING_SHIPMENT -> SHIPMENT_NOTIFIED (player) ->
// SHIPPED (operator), with an operator-only reversal back to
// SHIPMENT_NOTIFIED.
const (
	ShipmentStatusPending  = "PENDING_SHIPMENT"
	ShipmentStatusNotified = "SHIPMENT_NOTIFIED"
	ShipmentStatusShipped  = "SHIPPED"
)

// Prize is an award linked to exactly one sold ticket. For currency prizes
// Amount holds the typed value parsed once at award time; the compensator
// debits from it and never re-parses Content.
type Prize struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameCode       string             `bson:"gameCode" json:"gameCode"`
	TicketNumber   int                `bson:"ticketNumber" json:"ticketNumber"`
	PlayerID       primitive.ObjectID `bson:"playerId" json:"playerId"`
	Type           string             `bson:"type" json:"type"`
	Content        string             `bson:"content" json:"content"`
	Amount         int64              `bson:"amount,omitempty" json:"amount,omitempty"`
	ShipmentStatus string             `bson:"shipmentStatus" json:"shipmentStatus"`
	AwardedAt      time.Time          `bson:"awardedAt" json:"awardedAt"`
}
