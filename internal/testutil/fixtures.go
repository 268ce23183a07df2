package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile creates a profile with the given role and active flag.
func (f *Fixtures) CreateProfile(ctx context.Context, fullName, role string, active bool) models.Profile {
	f.t.Helper()

	p := models.Profile{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Role:      role,
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("profiles").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return p
}

// CreateBooking creates a booking for a guest in the given town.
func (f *Fixtures) CreateBooking(ctx context.Context, guestName string, loc models.Location) models.Booking {
	f.t.Helper()

	b := models.Booking{
		ID:        primitive.NewObjectID(),
		GuestName: guestName,
		Location:  loc,
		Weeks:     4,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("bookings").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test booking: %v", err)
	}
	return b
}

// CreateBookingHost links a booking to a host with the given response.
func (f *Fixtures) CreateBookingHost(ctx context.Context, bookingID, hostID primitive.ObjectID, response string) models.BookingHost {
	f.t.Helper()

	bh := models.BookingHost{
		ID:        primitive.NewObjectID(),
		BookingID: bookingID,
		HostID:    hostID,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("booking_hosts").InsertOne(ctx, bh); err != nil {
		f.t.Fatalf("failed to create test booking host: %v", err)
	}
	return bh
}
