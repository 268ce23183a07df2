// internal/domain/models/location.go
package models

import "strings"

// Location is one of the towns where the business places homestay guests.
// The set is closed; values are used as display and filter tokens only.
type Location string

const (
	Auckland     Location = "Auckland"
	Hamilton     Location = "Hamilton"
	Tauranga     Location = "Tauranga"
	Rotorua      Location = "Rotorua"
	Napier       Location = "Napier"
	Wellington   Location = "Wellington"
	Nelson       Location = "Nelson"
	Christchurch Location = "Christchurch"
	Dunedin      Location = "Dunedin"
)

var allLocations = []Location{
	Auckland,
	Hamilton,
	Tauranga,
	Rotorua,
	Napier,
	Wellington,
	Nelson,
	Christchurch,
	Dunedin,
}

// Locations returns the towns in display order (north to south).
// The returned slice is a copy.
func Locations() []Location {
	out := make([]Location, len(allLocations))
	copy(out, allLocations)
	return out
}

// Slug returns the URL path segment for the location.
func (l Location) Slug() string {
	return strings.ToLower(string(l))
}

// ParseLocation resolves a slug or display name (any case) to a Location.
func ParseLocation(s string) (Location, bool) {
	s = strings.TrimSpace(s)
	for _, loc := range allLocations {
		if strings.EqualFold(string(loc), s) {
			return loc, true
		}
	}
	return "", false
}

// LocationDetail is the content of a town's location page.
type LocationDetail struct {
	Location    Location
	Image       string // image URI, shown at 640x360
	Description string // HTML; sanitized before rendering
	MapURL      string // map embed URI
}
