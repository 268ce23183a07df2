package viewdata

import (
	"fmt"
	"html/template"
	"net/http"
)

// LocationPage is the input to the location page layout.
// Fields are not validated; callers pass well-formed values.
type LocationPage struct {
	Title       string
	Image       string        // image URI
	Description template.HTML // rendered beside the image
	MapURL      string        // map embed URI
	Extra       template.HTML // optional content after the map
}

// Fixed media geometry for location pages.
const (
	LocationImageWidth  = 640
	LocationImageHeight = 360
)

// LocationVM is the view model for location detail pages.
type LocationVM struct {
	BaseVM

	Heading     string
	Image       string
	ImageWidth  int
	ImageHeight int
	Description template.HTML
	MapURL      template.URL
	Extra       template.HTML
}

// LocationTitle is the document title for a location page.
func LocationTitle(title string) string {
	return fmt.Sprintf("%s | %s", title, Current().SiteName)
}

// LocationDescription is the SEO description for a location page.
func LocationDescription(title string) string {
	return fmt.Sprintf("Homestay hosting in %s with %s.", title, Current().SiteName)
}

// NewLocationVM builds the location layout model on top of the page layout.
func NewLocationVM(r *http.Request, p LocationPage) LocationVM {
	return LocationVM{
		BaseVM:      NewBaseVM(r, LocationTitle(p.Title), LocationDescription(p.Title)),
		Heading:     p.Title,
		Image:       p.Image,
		ImageWidth:  LocationImageWidth,
		ImageHeight: LocationImageHeight,
		Description: p.Description,
		MapURL:      template.URL(p.MapURL),
		Extra:       p.Extra,
	}
}
