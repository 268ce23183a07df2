package home

import (
	"net/http"

	"github.com/dalemusser/homestay/internal/app/content"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// LocationLink is one town in the home page location list.
type LocationLink struct {
	Name string
	Href string
}

type pageData struct {
	viewdata.BaseVM
	Highlights   []models.TravelHighlight
	Testimonials []models.Testimonial
	Locations    []LocationLink
}

// LocationLinks returns the town list in display order.
func LocationLinks() []LocationLink {
	locs := models.Locations()
	out := make([]LocationLink, len(locs))
	for i, loc := range locs {
		out[i] = LocationLink{Name: string(loc), Href: "/locations/" + loc.Slug()}
	}
	return out
}

func (h *Handler) buildPageData(r *http.Request) pageData {
	base := viewdata.NewBaseVM(r, "", "")
	base.IsAdmin = auth.IsAdmin(r)
	return pageData{
		BaseVM:       base,
		Highlights:   content.Highlights(),
		Testimonials: content.Testimonials(),
		Locations:    LocationLinks(),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.buildPageData(r))
}
