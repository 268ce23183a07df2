// internal/app/features/dashboard/enquiry.go
package dashboard

import (
	"context"
	"errors"
	"net/http"

	enquirystore "github.com/dalemusser/homestay/internal/app/store/enquiries"
	"github.com/dalemusser/homestay/internal/app/system/timeouts"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type enquiryData struct {
	viewdata.BaseVM
	Enquiry models.HostEnquiry
}

// ServeEnquiry handles GET /dashboard/enquiries/{ref}.
func (h *Handler) ServeEnquiry(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	if h.Enquiries == nil || ref == "" {
		h.ErrLog.LogNotFound(w, r, "dashboard: enquiry lookup without store or reference", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Enquiries.GetByReference(ctx, ref)
	if errors.Is(err, enquirystore.ErrNotFound) {
		h.ErrLog.LogNotFound(w, r, "dashboard: enquiry not found", "/dashboard")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard: load enquiry failed", err, "", "/dashboard")
		return
	}

	base := viewdata.NewBaseVM(r, "Enquiry "+e.Reference, "")
	base.IsAdmin = true
	templates.Render(w, r, "dashboard_enquiry", enquiryData{BaseVM: base, Enquiry: e})
}
