// internal/app/features/dashboard/page.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/dalemusser/homestay/internal/app/system/timeouts"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Stats     stats.Stats
	Updated   string
	Enquiries []models.HostEnquiry
	UserName  string

	NewEnquiries      int64
	NewEnquiriesKnown bool
}

// page assembles the dashboard view for one request.
func (h *Handler) page(r *http.Request) pageData {
	s := h.fetch(r)

	base := viewdata.NewBaseVM(r, "Dashboard", "")
	base.IsAdmin = true
	data := pageData{
		BaseVM:    base,
		Stats:     s,
		Updated:   updatedLabel(s),
		Enquiries: h.recent(r),
	}
	data.NewEnquiries, data.NewEnquiriesKnown = h.newEnquiries(r)
	if u, ok := auth.CurrentUser(r); ok {
		data.UserName = u.Name
	}
	return data
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := h.page(r)

	h.Log.Debug("dashboard served",
		zap.Int64("bookings", data.Stats.TotalBookings),
		zap.Int64("active_hosts", data.Stats.ActiveHosts),
		zap.Int64("pending", data.Stats.PendingResponses))

	templates.Render(w, r, "dashboard", data)
}

func updatedLabel(s stats.Stats) string {
	if !s.Fetched() {
		return "Counts are not available yet."
	}
	return "Updated " + s.UpdatedAt.Local().Format("2 Jan 2006 at 15:04")
}

// HandleRefresh handles POST /dashboard/refresh: drop cached counts, run a
// fresh cycle, then go back to the dashboard.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if h.Cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		if err := h.Cache.Invalidate(ctx); err != nil {
			h.Log.Warn("dashboard: invalidate count cache failed", zap.Error(err))
		}
		cancel()
	}
	// Result discarded: the cycle repopulates the count cache so the
	// redirected GET reads fresh values.
	h.fetch(r)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
