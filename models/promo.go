package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PromoCode codes are stored uppercased; percentage must be positive.
type PromoCode struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code       string             `bson:"code" json:"code"`
	Percentage float64            `bson:"percentage" json:"percentage"`
}
