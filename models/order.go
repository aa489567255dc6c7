package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a single POS order as stored in the per-branch Order{Branch}
// collections. Total includes the table delivery charge when one was added;
// revenue reporting subtracts it back out.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerName        string             `bson:"customerName" json:"customerName"`
	PhoneNumber         string             `bson:"phoneNumber" json:"phoneNumber"`
	Total               float64            `bson:"total" json:"total"`
	TableDeliveryCharge float64            `bson:"tableDeliveryCharge,omitempty" json:"tableDeliveryCharge,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	Status              string             `bson:"status" json:"status"`
	Order               string             `bson:"order,omitempty" json:"order,omitempty"`
	Items               []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	AppliedPromo        *AppliedPromo      `bson:"appliedPromo,omitempty" json:"appliedPromo,omitempty"`
	SelectedLocation    string             `bson:"selectedLocation,omitempty" json:"selectedLocation,omitempty"`
}

type OrderItem struct {
	Item            ItemRef                `bson:"item" json:"item"`
	Quantity        float64                `bson:"quantity" json:"quantity"`
	TotalPrice      float64                `bson:"totalPrice" json:"totalPrice"`
	SelectedOptions map[string]interface{} `bson:"selectedOptions,omitempty" json:"selectedOptions,omitempty"`
}

type ItemRef struct {
	Name string `bson:"name" json:"name"`
}

type AppliedPromo struct {
	Code       string  `bson:"code" json:"code"`
	Percentage float64 `bson:"percentage" json:"percentage"`
}

// NetTotal is the order's revenue contribution: total minus the table
// delivery charge, which is pass-through money and never revenue.
func (o Order) NetTotal() float64 {
	return o.Total - o.TableDeliveryCharge
}

// Fulfilled/dispatched markers used by the reporting filters.
const (
	OrderStatusFulfilled = "fulfilled"
	OrderDispatched      = "dispatched"
)
