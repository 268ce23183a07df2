package content_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/homestay/internal/app/content"
	"github.com/dalemusser/homestay/internal/domain/models"
)

func TestDetail_EveryLocation(t *testing.T) {
	for _, loc := range models.Locations() {
		d, ok := content.Detail(loc)
		if !ok {
			t.Errorf("no detail for %s", loc)
			continue
		}
		if d.Location != loc {
			t.Errorf("%s: Location field %q", loc, d.Location)
		}
		if !strings.HasSuffix(d.Image, loc.Slug()+".jpg") {
			t.Errorf("%s: image %q", loc, d.Image)
		}
		if !strings.Contains(d.MapURL, string(loc)) {
			t.Errorf("%s: map %q", loc, d.MapURL)
		}
	}
}

func TestDetail_Unknown(t *testing.T) {
	if _, ok := content.Detail(models.Location("Atlantis")); ok {
		t.Error("expected no detail for unknown location")
	}
}

func TestTestimonials_Copy(t *testing.T) {
	a := content.Testimonials()
	if len(a) == 0 {
		t.Fatal("no testimonials")
	}
	a[0].Name = "changed"
	if content.Testimonials()[0].Name == "changed" {
		t.Error("Testimonials returned shared backing array")
	}
}

func TestHighlights_HaveIcons(t *testing.T) {
	for _, h := range content.Highlights() {
		if h.Icon == "" || h.Title == "" || h.Description == "" {
			t.Errorf("incomplete highlight: %+v", h)
		}
	}
}
