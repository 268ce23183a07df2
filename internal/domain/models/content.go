// internal/domain/models/content.go
package models

// Testimonial is a quote from a host family or guest shown on the home page.
type Testimonial struct {
	Quote string
	Name  string
}

// TravelHighlight is a selling point shown as an icon card.
// Icon is a symbolic name resolved by the stylesheet (e.g. "icon-mountain").
type TravelHighlight struct {
	Icon        string
	Title       string
	Description string
}
