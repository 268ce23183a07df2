// internal/domain/models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a placement request for a homestay guest.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GuestName string             `bson:"guest_name" json:"guest_name"`
	Location  Location           `bson:"location" json:"location"`
	ArrivesOn *time.Time         `bson:"arrives_on,omitempty" json:"arrives_on,omitempty"`
	Weeks     int                `bson:"weeks" json:"weeks"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Booking-host response states.
const (
	ResponsePending  = "pending"
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// BookingHost links a booking to a candidate host family and records
// the host's response to the placement request.
type BookingHost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID primitive.ObjectID `bson:"booking_id" json:"booking_id"`
	HostID    primitive.ObjectID `bson:"host_id" json:"host_id"`
	Response  string             `bson:"response" json:"response"` // pending, accepted, declined
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
