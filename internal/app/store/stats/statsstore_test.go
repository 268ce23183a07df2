package statsstore_test

import (
	"testing"

	statsstore "github.com/dalemusser/homestay/internal/app/store/stats"
	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/homestay/internal/testutil"
	"go.uber.org/zap"
)

var _ stats.Counter = (*statsstore.Store)(nil)

func TestCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := statsstore.New(db)

	if n, err := store.CountBookings(ctx); err != nil || n != 0 {
		t.Errorf("CountBookings: got (%d, %v), want (0, nil)", n, err)
	}
	if n, err := store.CountActiveHosts(ctx); err != nil || n != 0 {
		t.Errorf("CountActiveHosts: got (%d, %v), want (0, nil)", n, err)
	}
	if n, err := store.CountPendingResponses(ctx); err != nil || n != 0 {
		t.Errorf("CountPendingResponses: got (%d, %v), want (0, nil)", n, err)
	}
}

func TestCountActiveHosts_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateProfile(ctx, "Active Host One", models.RoleHost, true)
	fixtures.CreateProfile(ctx, "Active Host Two", models.RoleHost, true)
	fixtures.CreateProfile(ctx, "Retired Host", models.RoleHost, false)
	fixtures.CreateProfile(ctx, "Guest", models.RoleGuest, true)
	fixtures.CreateProfile(ctx, "Staff", models.RoleStaff, true)

	n, err := statsstore.New(db).CountActiveHosts(ctx)
	if err != nil {
		t.Fatalf("CountActiveHosts failed: %v", err)
	}
	if n != 2 {
		t.Errorf("CountActiveHosts: got %d, want 2", n)
	}
}

func TestCountPendingResponses_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	booking := fixtures.CreateBooking(ctx, "Guest A", models.Rotorua)
	host := fixtures.CreateProfile(ctx, "Host", models.RoleHost, true)

	fixtures.CreateBookingHost(ctx, booking.ID, host.ID, models.ResponsePending)
	fixtures.CreateBookingHost(ctx, booking.ID, host.ID, models.ResponseAccepted)
	fixtures.CreateBookingHost(ctx, booking.ID, host.ID, models.ResponseDeclined)
	fixtures.CreateBookingHost(ctx, booking.ID, host.ID, models.ResponsePending)

	n, err := statsstore.New(db).CountPendingResponses(ctx)
	if err != nil {
		t.Fatalf("CountPendingResponses failed: %v", err)
	}
	if n != 2 {
		t.Errorf("CountPendingResponses: got %d, want 2", n)
	}
}

func TestAggregator_WithMongo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var hosts []models.Profile
	for i := 0; i < 5; i++ {
		hosts = append(hosts, fixtures.CreateProfile(ctx, "Host", models.RoleHost, true))
	}
	var first models.Booking
	for i := 0; i < 42; i++ {
		b := fixtures.CreateBooking(ctx, "Guest", models.Nelson)
		if i == 0 {
			first = b
		}
	}
	for i := 0; i < 3; i++ {
		fixtures.CreateBookingHost(ctx, first.ID, hosts[i].ID, models.ResponsePending)
	}

	agg := stats.NewAggregator(statsstore.New(db), zap.NewNop())
	got := agg.Refetch(ctx)

	if got.TotalBookings != 42 || got.ActiveHosts != 5 || got.PendingResponses != 3 || got.Loading {
		t.Errorf("got %+v, want {42 5 3 false}", got)
	}
}
