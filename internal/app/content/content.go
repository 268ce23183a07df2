// Package content holds the static copy shown on the public pages:
// testimonials, travel highlights and the per-town location pages.
package content

import (
	"fmt"

	"github.com/dalemusser/homestay/internal/domain/models"
)

var testimonials = []models.Testimonial{
	{
		Quote: "Hosting Yuki for a term felt like gaining a daughter. We still video call every Sunday.",
		Name:  "The Tane family, Rotorua",
	},
	{
		Quote: "The team matched us with a student who loves tramping as much as we do. Perfect fit.",
		Name:  "Megan & Rob, Nelson",
	},
	{
		Quote: "My host family showed me a side of New Zealand no tour ever could.",
		Name:  "Lucas, student from Brazil",
	},
	{
		Quote: "Support was there every step of the way, from the first visit to the farewell dinner.",
		Name:  "Aroha, Hamilton",
	},
}

var highlights = []models.TravelHighlight{
	{
		Icon:        "icon-home",
		Title:       "Real Kiwi homes",
		Description: "Every host family is visited and vetted by our local coordinators.",
	},
	{
		Icon:        "icon-mountain",
		Title:       "Adventure on the doorstep",
		Description: "From geothermal valleys to alpine lakes, weekends are never dull.",
	},
	{
		Icon:        "icon-school",
		Title:       "Close to campus",
		Description: "Homes are matched to be within easy reach of schools and language centres.",
	},
	{
		Icon:        "icon-support",
		Title:       "24/7 support",
		Description: "Guests and hosts can reach a coordinator any time, day or night.",
	},
}

var blurbs = map[models.Location]string{
	models.Auckland:     "New Zealand's largest city, spread between two harbours with volcanic cones, beaches and a lively food scene.",
	models.Hamilton:     "A relaxed university city on the Waikato River, surrounded by green farmland and famous gardens.",
	models.Tauranga:     "Sunny Bay of Plenty living with surf beaches, Mount Maunganui and orchards all around.",
	models.Rotorua:      "Geothermal wonders, Māori culture and mountain biking trails right on the edge of town.",
	models.Napier:       "An art deco seaside city in Hawke's Bay, known for its wineries and sunshine.",
	models.Wellington:   "The compact, creative capital with a harbour waterfront, museums and plenty of wind.",
	models.Nelson:       "The sunniest spot in the country, close to Abel Tasman National Park and golden beaches.",
	models.Christchurch: "The Garden City of the South Island, rebuilt with new energy and close to the Southern Alps.",
	models.Dunedin:      "A student city with Scottish heritage, wildlife on the Otago Peninsula and a friendly pace.",
}

// Testimonials returns the home page testimonials. The slice is a copy.
func Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Highlights returns the travel highlight cards. The slice is a copy.
func Highlights() []models.TravelHighlight {
	out := make([]models.TravelHighlight, len(highlights))
	copy(out, highlights)
	return out
}

// Detail returns the location page content for loc.
func Detail(loc models.Location) (models.LocationDetail, bool) {
	blurb, ok := blurbs[loc]
	if !ok {
		return models.LocationDetail{}, false
	}
	return models.LocationDetail{
		Location:    loc,
		Image:       fmt.Sprintf("/static/img/locations/%s.jpg", loc.Slug()),
		Description: fmt.Sprintf("<p>%s</p><p>Our %s coordinator visits every host home before the first guest arrives.</p>", blurb, loc),
		MapURL:      fmt.Sprintf("https://maps.google.com/maps?q=%s,+New+Zealand&output=embed", loc),
	}, true
}
