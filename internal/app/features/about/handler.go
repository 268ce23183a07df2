package about

import (
	"net/http"

	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "About us", "Who we are and how we match guests with host families across New Zealand.")
	base.IsAdmin = auth.IsAdmin(r)
	templates.Render(w, r, "about", pageData{BaseVM: base})
}
