package blog

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

// Handler serves the blog placeholder. Posts are not published yet.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Blog", "Stories and tips from our host families and guests.")
	base.IsAdmin = auth.IsAdmin(r)
	templates.Render(w, r, "blog", pageData{BaseVM: base})
}
