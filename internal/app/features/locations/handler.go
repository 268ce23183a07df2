package locations

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/homestay/internal/app/content"
	uierrors "github.com/dalemusser/homestay/internal/app/features/errors"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/htmlsanitize"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the location list and the per-town pages.
type Handler struct {
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{ErrLog: errLog, Log: logger}
}

type locationItem struct {
	Name  string
	Href  string
	Image string
}

type listData struct {
	viewdata.BaseVM
	Items []locationItem
}

// ServeList handles GET /locations.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	base := viewdata.NewBaseVM(r, "Our locations", "Host families in nine towns and cities across New Zealand.")
	base.IsAdmin = auth.IsAdmin(r)

	data := listData{BaseVM: base}
	for _, loc := range models.Locations() {
		d, _ := content.Detail(loc)
		data.Items = append(data.Items, locationItem{
			Name:  string(loc),
			Href:  "/locations/" + loc.Slug(),
			Image: d.Image,
		})
	}
	templates.Render(w, r, "locations_list", data)
}

// ServeLocation handles GET /locations/{slug}.
func (h *Handler) ServeLocation(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	loc, ok := models.ParseLocation(slug)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "unknown location", "/locations")
		return
	}
	detail, ok := content.Detail(loc)
	if !ok {
		h.ErrLog.LogNotFound(w, r, "location has no page", "/locations")
		return
	}

	vm := viewdata.NewLocationVM(r, PageFor(detail))
	vm.IsAdmin = auth.IsAdmin(r)
	templates.Render(w, r, "location_detail", vm)
}

// PageFor turns location content into the location layout input.
func PageFor(d models.LocationDetail) viewdata.LocationPage {
	return viewdata.LocationPage{
		Title:       string(d.Location),
		Image:       d.Image,
		Description: htmlsanitize.SanitizeToHTML(d.Description),
		MapURL:      d.MapURL,
		Extra:       enquiryPrompt(d.Location),
	}
}

func enquiryPrompt(loc models.Location) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<p>Live in %s and have a spare room? <a href="/hosting?location=%s">Become a host</a>.</p>`,
		template.HTMLEscapeString(string(loc)), template.URLQueryEscaper(loc.Slug())))
}
