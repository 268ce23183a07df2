// internal/domain/models/enquiry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HostEnquiry is a "become a host" request submitted from the public site.
// Reference is the identifier quoted back to the family.
type HostEnquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference string             `bson:"reference" json:"reference"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location  Location           `bson:"location" json:"location"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	ClientIP  string             `bson:"client_ip,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
