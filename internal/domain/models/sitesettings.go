// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is the business name used for page titles when no
// override is configured.
const DefaultSiteName = "Homestay Hosting"

// DefaultSiteDescription is the boilerplate SEO description used when a
// page does not supply its own.
const DefaultSiteDescription = "Homestay Hosting matches international students and travellers " +
	"with welcoming host families across New Zealand."
