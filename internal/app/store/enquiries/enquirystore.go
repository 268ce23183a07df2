// internal/app/store/enquiries/enquirystore.go
package enquirystore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is where host enquiries are kept.
const Collection = "host_enquiries"

// ErrNotFound is returned when no enquiry carries the requested reference.
var ErrNotFound = errors.New("enquiry not found")

// Store provides access to the host_enquiries collection.
type Store struct {
	c   *mongo.Collection
	now func() time.Time
}

// New creates a new enquiry store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection), now: time.Now}
}

// NewReference returns a short reference quoted back to the family,
// e.g. "HS-1F0C9A2B".
func NewReference() string {
	id := uuid.New()
	return "HS-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// Create stores e, filling ID, Reference and CreatedAt. The stored enquiry
// is returned.
func (s *Store) Create(ctx context.Context, e models.HostEnquiry) (models.HostEnquiry, error) {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = s.now().UTC()

	// References are random; retry the rare collision on the unique index.
	for attempt := 0; attempt < 3; attempt++ {
		e.Reference = NewReference()
		_, err := s.c.InsertOne(ctx, e)
		if err == nil {
			return e, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return models.HostEnquiry{}, fmt.Errorf("insert enquiry: %w", err)
		}
	}
	return models.HostEnquiry{}, errors.New("insert enquiry: could not allocate a unique reference")
}

// GetByReference loads one enquiry.
func (s *Store) GetByReference(ctx context.Context, ref string) (models.HostEnquiry, error) {
	var e models.HostEnquiry
	err := s.c.FindOne(ctx, bson.M{"reference": strings.ToUpper(strings.TrimSpace(ref))}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.HostEnquiry{}, ErrNotFound
	}
	if err != nil {
		return models.HostEnquiry{}, fmt.Errorf("find enquiry: %w", err)
	}
	return e, nil
}

// Recent returns up to limit enquiries, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.HostEnquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.HostEnquiry
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode enquiries: %w", err)
	}
	return out, nil
}

// CountSince returns the number of enquiries received at or after t.
func (s *Store) CountSince(ctx context.Context, t time.Time) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": t.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("count enquiries: %w", err)
	}
	return n, nil
}
