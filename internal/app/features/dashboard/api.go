// internal/app/features/dashboard/api.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/homestay/internal/app/system/statschart"
	"go.uber.org/zap"
)

// ServeStats handles GET /dashboard/stats and answers with the settled
// snapshot as JSON. A failed cycle still answers 200 with the last known
// counts (zero for a fresh aggregator) and loading=false.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	s := h.fetch(r)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.Log.Warn("dashboard: encode stats", zap.Error(err))
	}
}

// ServeChart handles GET /dashboard/chart: a standalone chart page the
// dashboard embeds in an iframe.
func (h *Handler) ServeChart(w http.ResponseWriter, r *http.Request) {
	s := h.fetch(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statschart.Render(w, s); err != nil {
		h.Log.Error("dashboard: render chart", zap.Error(err))
	}
}
