package enquirystore_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	enquirystore "github.com/dalemusser/homestay/internal/app/store/enquiries"
	"github.com/dalemusser/homestay/internal/app/system/indexes"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/homestay/internal/testutil"
	"go.uber.org/zap"
)

var refPattern = regexp.MustCompile(`^HS-[0-9A-F]{8}$`)

func TestNewReference_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		ref := enquirystore.NewReference()
		if !refPattern.MatchString(ref) {
			t.Fatalf("reference %q does not match %s", ref, refPattern)
		}
		seen[ref] = true
	}
	if len(seen) < 45 {
		t.Errorf("references are not random enough: %d unique of 50", len(seen))
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	store := enquirystore.New(db)

	created, err := store.Create(ctx, models.HostEnquiry{
		FullName: "Aroha Ngata",
		Email:    "aroha@example.com",
		Location: models.Hamilton,
		Message:  "We have a spare room near the university.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() || created.CreatedAt.IsZero() {
		t.Error("expected ID and CreatedAt to be set")
	}
	if !refPattern.MatchString(created.Reference) {
		t.Errorf("unexpected reference %q", created.Reference)
	}

	got, err := store.GetByReference(ctx, " "+created.Reference+" ")
	if err != nil {
		t.Fatalf("GetByReference failed: %v", err)
	}
	if got.FullName != "Aroha Ngata" || got.Location != models.Hamilton {
		t.Errorf("unexpected enquiry %+v", got)
	}
}

func TestStore_GetByReference_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := enquirystore.New(db).GetByReference(ctx, "HS-00000000")
	if !errors.Is(err, enquirystore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_RecentAndCountSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	store := enquirystore.New(db)

	start := time.Now().Add(-time.Minute)
	for _, name := range []string{"One", "Two", "Three"} {
		if _, err := store.Create(ctx, models.HostEnquiry{FullName: name, Email: name + "@example.com", Location: models.Nelson}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent: got %d, want 2", len(recent))
	}
	if recent[0].CreatedAt.Before(recent[1].CreatedAt) {
		t.Error("Recent should be newest first")
	}

	n, err := store.CountSince(ctx, start)
	if err != nil {
		t.Fatalf("CountSince failed: %v", err)
	}
	if n != 3 {
		t.Errorf("CountSince: got %d, want 3", n)
	}
}
