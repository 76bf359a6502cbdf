package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parcel statuses
const (
	StatusPending   = "pending"
	StatusOnTheWay  = "on-the-way"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// IsTerminalStatus reports whether a parcel in the given status accepts no
// further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// ParcelUser is the booking owner's details denormalized onto the parcel.
type ParcelUser struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// ParcelDetails describes what is being shipped.
type ParcelDetails struct {
	ParcelType   string  `bson:"parcelType" json:"parcelType"`
	ParcelWeight float64 `bson:"parcelWeight" json:"parcelWeight"`
}

// ReceiverDetails describes the delivery destination.
type ReceiverDetails struct {
	Name      string  `bson:"name" json:"name"`
	Phone     string  `bson:"phone" json:"phone"`
	Address   string  `bson:"address" json:"address"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Parcel is a booking record. DeliveryManID and ApproximateDeliveryDate stay
// nil until a delivery man is assigned.
type Parcel struct {
	ID                      primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	User                    ParcelUser          `bson:"user" json:"user"`
	ParcelDetails           ParcelDetails       `bson:"parcelDetails" json:"parcelDetails"`
	ReceiverDetails         ReceiverDetails     `bson:"receiverDetails" json:"receiverDetails"`
	Price                   float64             `bson:"price" json:"price"`
	Status                  string              `bson:"status" json:"status"`
	DeliveryDate            time.Time           `bson:"deliveryDate" json:"deliveryDate"`
	ApproximateDeliveryDate *time.Time          `bson:"approximateDeliveryDate,omitempty" json:"approximateDeliveryDate,omitempty"`
	DeliveryManID           *primitive.ObjectID `bson:"deliveryMenID,omitempty" json:"deliveryMenID,omitempty"`
	BookedDate              time.Time           `bson:"bookedDate" json:"bookedDate"`
}

// ParcelSummary is the projected admin listing entry.
type ParcelSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	User         ParcelUser         `bson:"user" json:"user"`
	BookedDate   time.Time          `bson:"bookedDate" json:"bookedDate"`
	DeliveryDate time.Time          `bson:"deliveryDate" json:"deliveryDate"`
	Price        float64            `bson:"price" json:"price"`
	Status       string             `bson:"status" json:"status"`
}

// DateWiseCount is one bucket of the date-wise booking report.
type DateWiseCount struct {
	Date         string `bson:"date" json:"date"`
	BookedParcel int64  `bson:"bookedParcel" json:"bookedParcel"`
}

// PlatformTotals are the site-wide counters shown on the landing page.
type PlatformTotals struct {
	TotalBookedParcel    int64 `json:"totalBookedParcel"`
	TotalDeliveredParcel int64 `json:"totalDeliveredParcel"`
	TotalUser            int64 `json:"totalUser"`
}
