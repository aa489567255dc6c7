package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CashBalanceDetails is one counter reconciliation entry: what the staff
// counted versus what the system says should be in the drawer.
type CashBalanceDetails struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Location      string             `bson:"location" json:"location"`
	AmountEntered float64            `bson:"amountEntered" json:"amountEntered"`
	ActualAmount  float64            `bson:"actualAmount" json:"actualAmount"`
	Difference    float64            `bson:"difference" json:"difference"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// Reconciliation statuses derived from the counted-vs-expected difference.
const (
	CashStatusMatched  = "Matched"
	CashStatusShortage = "Shortage"
	CashStatusSurplus  = "Surplus"
)
