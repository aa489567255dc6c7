package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnregisteredUserName is the sentinel stored when a phone number is banned
// before the customer ever signed up.
const UnregisteredUserName = "Unregistered User"

// UserData is keyed by phone number (the business key); _id is incidental.
type UserData struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	SignupDate  *time.Time         `bson:"signupDate,omitempty" json:"signupDate,omitempty"`
	BanStatus   bool               `bson:"banStatus,omitempty" json:"banStatus"`
	BanDate     *time.Time         `bson:"banDate,omitempty" json:"banDate,omitempty"`
	BanHistory  []BanEvent         `bson:"banHistory,omitempty" json:"banHistory,omitempty"`
}

type BanEvent struct {
	Date   time.Time `bson:"date" json:"date"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}
