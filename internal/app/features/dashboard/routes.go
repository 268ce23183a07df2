// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard"). Every route
// requires a signed-in admin.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)
		pr.Get("/", h.ServeDashboard)
		pr.Get("/stats", h.ServeStats)
		pr.Get("/chart", h.ServeChart)
		pr.Post("/refresh", h.HandleRefresh)
		pr.Get("/enquiries/{ref}", h.ServeEnquiry)
	})

	return r
}
