// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// RenderNotFound shows the 404 page without logging.
// If backURL is empty, it resolves a safe back URL defaulting to "/".
func RenderNotFound(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	renderError(w, r, http.StatusNotFound, "Page not found", "We couldn't find the page you were looking for.", backURL)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	renderError(w, r, http.StatusForbidden, "Access denied", msg, backURL)
}

// RenderTooManyRequests shows the rate-limit page.
func RenderTooManyRequests(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusTooManyRequests, "Slow down", msg, backURL)
}
