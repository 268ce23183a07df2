// internal/app/bootstrap/csrf.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// csrfMiddleware protects every unsafe method with a double-submit token.
// Forms render the token from BaseVM.CSRFToken in a hidden field named
// gorilla.csrf.Token. The key is derived from the session key so tokens
// survive restarts; without one a random key is used.
//
// Outside production the site is served over plain HTTP, so requests are
// marked plaintext to skip the Referer check gorilla/csrf applies to TLS.
func csrfMiddleware(sessionKey string, secure bool, onFail http.Handler, logger *zap.Logger) func(http.Handler) http.Handler {
	var key []byte
	if sessionKey != "" {
		sum := sha256.Sum256([]byte("homestay-csrf:" + sessionKey))
		key = sum[:]
	} else {
		key = securecookie.GenerateRandomKey(32)
	}

	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("CSRF check failed",
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.Error(csrf.FailureReason(r)))
			onFail.ServeHTTP(w, r)
		})),
	)

	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
