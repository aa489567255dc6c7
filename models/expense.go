package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense lives in the per-branch Expense{Branch} collections. Category is a
// free-form string, but the reserved categories in reporting/categories.go
// change how an entry is counted: the "Extra" payment rows are really income
// recorded through the expense screen.
type Expense struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Category  string             `bson:"category" json:"category"`
	Amount    float64            `bson:"amount" json:"amount"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	// Branch is not stored; list endpoints stamp it on each row so the UI
	// can tell rows apart when querying both branches.
	Branch string `bson:"-" json:"branch,omitempty"`
}
