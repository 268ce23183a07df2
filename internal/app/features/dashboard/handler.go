// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/homestay/internal/app/features/errors"
	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/dalemusser/homestay/internal/app/system/timeouts"
	"github.com/dalemusser/homestay/internal/domain/models"
	"go.uber.org/zap"
)

// Invalidator drops cached counts so the next cycle reads the store.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// EnquiryReader reads the host enquiries shown to the admin.
type EnquiryReader interface {
	Recent(ctx context.Context, limit int64) ([]models.HostEnquiry, error)
	CountSince(ctx context.Context, t time.Time) (int64, error)
	GetByReference(ctx context.Context, ref string) (models.HostEnquiry, error)
}

const (
	// recentEnquiries is how many enquiries the dashboard lists.
	recentEnquiries = 5
	// newEnquiryWindow is the period covered by the "new enquiries" card.
	newEnquiryWindow = 7 * 24 * time.Hour
)

type Handler struct {
	Counter   stats.Counter
	Cache     Invalidator   // nil when no count cache is configured
	Enquiries EnquiryReader // nil hides the enquiry list and card
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(counter stats.Counter, cache Invalidator, enquiries EnquiryReader, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Counter:   counter,
		Cache:     cache,
		Enquiries: enquiries,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// fetch runs one aggregator cycle for the current request. Each request
// owns its aggregator; it is closed when the request is done with it.
func (h *Handler) fetch(r *http.Request) stats.Stats {
	agg := stats.NewAggregator(h.Counter, h.Log)
	defer agg.Close()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "dashboard stats")
	defer cancel()

	return agg.Refetch(ctx)
}

func (h *Handler) recent(r *http.Request) []models.HostEnquiry {
	if h.Enquiries == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Enquiries.Recent(ctx, recentEnquiries)
	if err != nil {
		h.Log.Warn("dashboard: list recent enquiries failed", zap.Error(err))
		return nil
	}
	return list
}

// newEnquiries counts enquiries received in the last newEnquiryWindow. ok is
// false when there is no store or the count failed.
func (h *Handler) newEnquiries(r *http.Request) (n int64, ok bool) {
	if h.Enquiries == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Enquiries.CountSince(ctx, time.Now().Add(-newEnquiryWindow))
	if err != nil {
		h.Log.Warn("dashboard: count new enquiries failed", zap.Error(err))
		return 0, false
	}
	return n, true
}
