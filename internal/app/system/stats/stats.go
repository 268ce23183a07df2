// Package stats aggregates the dashboard counts.
//
// An Aggregator belongs to one view (one dashboard request). It starts with
// zero counts and Loading=true, and each Refetch runs one fetch cycle: the
// three counts are queried concurrently and either all applied together or,
// if any query fails, none applied. Either way Loading is cleared when the
// cycle settles.
package stats

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Counter is the read-only counting interface the aggregator needs from the
// remote data store.
type Counter interface {
	// CountBookings returns the number of booking records.
	CountBookings(ctx context.Context) (int64, error)
	// CountActiveHosts returns the number of profiles with role "host"
	// that are active.
	CountActiveHosts(ctx context.Context) (int64, error)
	// CountPendingResponses returns the number of booking-host records
	// whose response is "pending".
	CountPendingResponses(ctx context.Context) (int64, error)
}

// Stats is the dashboard read model.
type Stats struct {
	TotalBookings    int64     `json:"total_bookings"`
	ActiveHosts      int64     `json:"active_hosts"`
	PendingResponses int64     `json:"pending_responses"`
	Loading          bool      `json:"loading"`
	UpdatedAt        time.Time `json:"updated_at"` // zero until a cycle succeeds
}

// Fetched reports whether any fetch cycle has succeeded. It separates
// "never fetched" from "fetched and all zero".
func (s Stats) Fetched() bool {
	return !s.UpdatedAt.IsZero()
}

// State is the aggregator's lifecycle state.
type State int

const (
	StateIdle     State = iota // created, no cycle started
	StateFetching              // a cycle is in flight
	StateSettled               // the last cycle finished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Aggregator owns one Stats value and refreshes it from a Counter.
type Aggregator struct {
	counter Counter
	log     *zap.Logger
	now     func() time.Time

	fetchMu sync.Mutex // serializes cycles

	mu     sync.Mutex
	stats  Stats
	state  State
	closed bool
}

// NewAggregator returns an aggregator in the Idle state with zero counts
// and Loading=true.
func NewAggregator(counter Counter, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		counter: counter,
		log:     logger,
		now:     time.Now,
		stats:   Stats{Loading: true},
		state:   StateIdle,
	}
}

// Snapshot returns a copy of the current stats.
func (a *Aggregator) Snapshot() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// State returns the current lifecycle state.
func (a *Aggregator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Close marks the owning view as gone. A cycle that completes afterwards
// does not apply its result.
func (a *Aggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

// Refetch runs one fetch cycle and returns the settled stats.
//
// Failures are logged and leave the previous counts in place; they are not
// returned to the caller. Concurrent calls run one after another.
func (a *Aggregator) Refetch(ctx context.Context) Stats {
	a.fetchMu.Lock()
	defer a.fetchMu.Unlock()

	a.mu.Lock()
	if a.closed {
		s := a.stats
		a.mu.Unlock()
		return s
	}
	a.stats.Loading = true
	a.state = StateFetching
	a.mu.Unlock()

	var bookings, hosts, pending int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.counter.CountBookings(gctx)
		if err != nil {
			return &QueryError{Query: "bookings", Err: err}
		}
		bookings = n
		return nil
	})
	g.Go(func() error {
		n, err := a.counter.CountActiveHosts(gctx)
		if err != nil {
			return &QueryError{Query: "active_hosts", Err: err}
		}
		hosts = n
		return nil
	})
	g.Go(func() error {
		n, err := a.counter.CountPendingResponses(gctx)
		if err != nil {
			return &QueryError{Query: "pending_responses", Err: err}
		}
		pending = n
		return nil
	})
	err := g.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		a.log.Debug("dashboard stats: discarding result for closed view")
		return a.stats
	}

	a.state = StateSettled
	a.stats.Loading = false
	if err != nil {
		a.log.Error("dashboard stats: fetch failed", zap.Error(err))
		return a.stats
	}

	a.stats.TotalBookings = clamp(bookings)
	a.stats.ActiveHosts = clamp(hosts)
	a.stats.PendingResponses = clamp(pending)
	a.stats.UpdatedAt = a.now().UTC()
	return a.stats
}

// clamp keeps counts non-negative whatever the backend returns.
func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
