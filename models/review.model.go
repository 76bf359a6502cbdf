package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer rating for a delivery man. Immutable once written;
// only its effect on the delivery man's averageReview changes afterwards.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DeliveryManID primitive.ObjectID `bson:"deliveryManId" json:"deliveryManId"`
	UserName      string             `bson:"userName" json:"userName"`
	UserPhoto     string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	Rating        float64            `bson:"rating" json:"rating"`
	Feedback      string             `bson:"feedback" json:"feedback"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
