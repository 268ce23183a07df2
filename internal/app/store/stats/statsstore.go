package statsstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/homestay/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names counted by the dashboard.
const (
	BookingsCollection     = "bookings"
	ProfilesCollection     = "profiles"
	BookingHostsCollection = "booking_hosts"
)

// Store answers the dashboard count queries from MongoDB.
// It implements stats.Counter.
type Store struct {
	bookings     *mongo.Collection
	profiles     *mongo.Collection
	bookingHosts *mongo.Collection
}

// New creates a stats store over db.
func New(db *mongo.Database) *Store {
	return &Store{
		bookings:     db.Collection(BookingsCollection),
		profiles:     db.Collection(ProfilesCollection),
		bookingHosts: db.Collection(BookingHostsCollection),
	}
}

// CountBookings returns the total number of bookings.
func (s *Store) CountBookings(ctx context.Context) (int64, error) {
	n, err := s.bookings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// CountActiveHosts returns the number of active host profiles.
func (s *Store) CountActiveHosts(ctx context.Context) (int64, error) {
	filter := bson.M{"role": models.RoleHost, "is_active": true}
	n, err := s.profiles.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count active hosts: %w", err)
	}
	return n, nil
}

// CountPendingResponses returns the number of booking-host records still
// awaiting the host's answer.
func (s *Store) CountPendingResponses(ctx context.Context) (int64, error) {
	filter := bson.M{"response": models.ResponsePending}
	n, err := s.bookingHosts.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count pending responses: %w", err)
	}
	return n, nil
}
