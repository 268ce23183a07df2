package viewdata_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/gorilla/csrf"
)

func TestNewMeta_Defaults(t *testing.T) {
	viewdata.Reset()

	m := viewdata.NewMeta("", "")
	if m.Title != models.DefaultSiteName {
		t.Errorf("Title: got %q, want %q", m.Title, models.DefaultSiteName)
	}
	if m.Description != models.DefaultSiteDescription {
		t.Errorf("Description: got %q, want default boilerplate", m.Description)
	}
}

func TestNewMeta_Overrides(t *testing.T) {
	viewdata.Reset()

	m := viewdata.NewMeta("Blog", "News from our hosts")
	if m.Title != "Blog" || m.Description != "News from our hosts" {
		t.Errorf("got %+v", m)
	}
}

func TestConfigure_ChangesDefaults(t *testing.T) {
	viewdata.Configure(viewdata.Defaults{SiteName: "Test Stays"})
	defer viewdata.Reset()

	m := viewdata.NewMeta("", "")
	if m.Title != "Test Stays" {
		t.Errorf("Title: got %q, want %q", m.Title, "Test Stays")
	}
	// description untouched by a partial Configure
	if m.Description != models.DefaultSiteDescription {
		t.Errorf("Description: got %q", m.Description)
	}
}

func TestNewBaseVM_NavActive(t *testing.T) {
	viewdata.Reset()
	req := httptest.NewRequest("GET", "/locations/nelson", nil)

	vm := viewdata.NewBaseVM(req, "Nelson", "")

	active := ""
	for _, item := range vm.Nav {
		if item.Active {
			if active != "" {
				t.Fatalf("more than one active nav item: %q and %q", active, item.Href)
			}
			active = item.Href
		}
	}
	if active != "/locations" {
		t.Errorf("active nav: got %q, want /locations", active)
	}
	if !strings.Contains(string(vm.Reveal), "data-reveal") {
		t.Errorf("Reveal attrs missing: %q", vm.Reveal)
	}
}

func TestNewBaseVM_HomeOnlyActiveAtRoot(t *testing.T) {
	req := httptest.NewRequest("GET", "/blog", nil)

	vm := viewdata.NewBaseVM(req, "", "")
	for _, item := range vm.Nav {
		if item.Href == "/" && item.Active {
			t.Error("home marked active on /blog")
		}
	}
}

func TestNewLocationVM_DerivedMeta(t *testing.T) {
	viewdata.Reset()
	req := httptest.NewRequest("GET", "/locations/rotorua", nil)

	vm := viewdata.NewLocationVM(req, viewdata.LocationPage{
		Title:  "Rotorua",
		Image:  "/static/img/rotorua.jpg",
		MapURL: "https://maps.example.com/embed?q=Rotorua",
	})

	wantTitle := "Rotorua | " + models.DefaultSiteName
	if vm.Meta.Title != wantTitle {
		t.Errorf("Meta.Title: got %q, want %q", vm.Meta.Title, wantTitle)
	}
	if !strings.Contains(vm.Meta.Description, "Rotorua") {
		t.Errorf("Meta.Description does not mention the town: %q", vm.Meta.Description)
	}
	if vm.Heading != "Rotorua" {
		t.Errorf("Heading: got %q", vm.Heading)
	}
	if vm.ImageWidth != 640 || vm.ImageHeight != 360 {
		t.Errorf("image size: got %dx%d, want 640x360", vm.ImageWidth, vm.ImageHeight)
	}
}

func TestNewBaseVM_CanonicalURL(t *testing.T) {
	viewdata.Reset()
	defer viewdata.Reset()

	req := httptest.NewRequest("GET", "/locations/nelson", nil)
	if vm := viewdata.NewBaseVM(req, "", ""); vm.CanonicalURL != "" {
		t.Errorf("CanonicalURL without base URL: got %q, want empty", vm.CanonicalURL)
	}

	viewdata.Configure(viewdata.Defaults{BaseURL: "https://homestay.example.nz/"})
	vm := viewdata.NewBaseVM(req, "", "")
	if vm.CanonicalURL != "https://homestay.example.nz/locations/nelson" {
		t.Errorf("CanonicalURL: got %q", vm.CanonicalURL)
	}
}

func TestNewBaseVM_CSRFToken(t *testing.T) {
	viewdata.Reset()

	if vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/hosting", nil), "", ""); vm.CSRFToken != "" {
		t.Errorf("CSRFToken without middleware: got %q, want empty", vm.CSRFToken)
	}

	var vm viewdata.BaseVM
	protect := csrf.Protect([]byte("0123456789abcdef0123456789abcdef"), csrf.Secure(false))
	protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vm = viewdata.NewBaseVM(r, "", "")
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/hosting", nil))

	if vm.CSRFToken == "" {
		t.Error("expected a CSRF token behind csrf.Protect")
	}
}
