// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/homestay/internal/app/system/reveal"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Meta is the page-level SEO metadata written into the document head.
type Meta struct {
	Title       string
	Description string
}

// NavItem is one entry in the site header navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", ""),
//	}
type BaseVM struct {
	Meta Meta

	SiteName     string
	CurrentPath  string
	CanonicalURL string // absolute URL of this page; blank when no base URL is configured
	Nav          []NavItem
	Year         int

	// Token for the hidden gorilla.csrf.Token field in POST forms.
	CSRFToken string

	// Attributes for reveal containers; templates write <section {{.Reveal}}>.
	Reveal template.HTMLAttr

	// Admin context (dashboard pages)
	IsAdmin bool

	// One-shot message shown under the header (e.g. after a form post).
	Flash string
}

// Defaults holds the site-wide SEO fallbacks.
type Defaults struct {
	SiteName    string
	Description string
	BaseURL     string // public origin, e.g. "https://homestay.example.nz"
}

var (
	mu       sync.RWMutex
	defaults = Defaults{
		SiteName:    models.DefaultSiteName,
		Description: models.DefaultSiteDescription,
	}
)

// Configure replaces the site-wide defaults. Empty fields keep their
// current value. Call once at startup.
func Configure(d Defaults) {
	mu.Lock()
	defer mu.Unlock()
	if d.SiteName != "" {
		defaults.SiteName = d.SiteName
	}
	if d.Description != "" {
		defaults.Description = d.Description
	}
	if d.BaseURL != "" {
		defaults.BaseURL = strings.TrimRight(d.BaseURL, "/")
	}
}

// Reset restores the built-in defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	defaults = Defaults{
		SiteName:    models.DefaultSiteName,
		Description: models.DefaultSiteDescription,
	}
}

// Current returns the site-wide defaults in effect.
func Current() Defaults {
	mu.RLock()
	defer mu.RUnlock()
	return defaults
}

// NewMeta applies the site defaults to an optional title and description.
func NewMeta(title, description string) Meta {
	d := Current()
	if title == "" {
		title = d.SiteName
	}
	if description == "" {
		description = d.Description
	}
	return Meta{Title: title, Description: description}
}

// navLinks is the header navigation, in display order.
var navLinks = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Locations", Href: "/locations"},
	{Label: "Become a Host", Href: "/hosting"},
	{Label: "Blog", Href: "/blog"},
	{Label: "About", Href: "/about"},
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title (blank uses the site name)
//   - description: the SEO description (blank uses the site boilerplate)
func NewBaseVM(r *http.Request, title, description string) BaseVM {
	current := httpnav.CurrentPath(r)

	nav := make([]NavItem, len(navLinks))
	for i, item := range navLinks {
		item.Active = isActive(item.Href, current)
		nav[i] = item
	}

	d := Current()
	canonical := ""
	if d.BaseURL != "" {
		canonical = d.BaseURL + current
	}

	return BaseVM{
		Meta:         NewMeta(title, description),
		SiteName:     d.SiteName,
		CurrentPath:  current,
		CanonicalURL: canonical,
		Nav:          nav,
		Year:         time.Now().Year(),
		CSRFToken:    csrf.Token(r),
		Reveal:       reveal.Default().Attrs(),
	}
}

func isActive(href, current string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || (len(current) > len(href) && current[:len(href)+1] == href+"/")
}
