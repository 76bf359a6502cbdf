package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser        = "user"
	RoleDeliveryMan = "deliveryMan"
)

// User represents a registered account. Customers carry the booking counters,
// delivery men carry the delivery counter and the derived review average.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Phone           string             `bson:"phone" json:"phone"`
	Role            string             `bson:"role" json:"role"`
	BookedParcel    int64              `bson:"bookedParcel" json:"bookedParcel"`
	TotalSpent      float64            `bson:"totalSpent" json:"totalSpent"`
	DeliveredParcel int64              `bson:"deliveredParcel" json:"deliveredParcel"`
	AverageReview   float64            `bson:"averageReview" json:"averageReview"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// DeliveryManName is the projected {_id, name} view used by the parcel
// assignment dropdown.
type DeliveryManName struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// TopDeliveryMan is a projected leaderboard entry.
type TopDeliveryMan struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	AverageReview   float64            `bson:"averageReview" json:"averageReview"`
	DeliveredParcel int64              `bson:"deliveredParcel" json:"deliveredParcel"`
}
