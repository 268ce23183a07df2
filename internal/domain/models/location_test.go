package models_test

import (
	"testing"

	"github.com/dalemusser/homestay/internal/domain/models"
)

func TestLocations_ClosedSet(t *testing.T) {
	locs := models.Locations()
	if len(locs) != 9 {
		t.Fatalf("Locations: got %d, want 9", len(locs))
	}
	seen := map[models.Location]bool{}
	for _, l := range locs {
		if seen[l] {
			t.Errorf("duplicate location %q", l)
		}
		seen[l] = true
		if got, ok := models.ParseLocation(l.Slug()); !ok || got != l {
			t.Errorf("ParseLocation(%q) = (%q, %v)", l.Slug(), got, ok)
		}
	}
}

func TestLocations_ReturnsCopy(t *testing.T) {
	locs := models.Locations()
	locs[0] = "Nowhere"
	if models.Locations()[0] != models.Auckland {
		t.Error("Locations returned shared backing array")
	}
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in   string
		want models.Location
		ok   bool
	}{
		{"rotorua", models.Rotorua, true},
		{"Christchurch", models.Christchurch, true},
		{"  DUNEDIN ", models.Dunedin, true},
		{"queenstown", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := models.ParseLocation(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLocation(%q): got (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLocation_Slug(t *testing.T) {
	if models.Christchurch.Slug() != "christchurch" {
		t.Errorf("Slug: got %q", models.Christchurch.Slug())
	}
}
