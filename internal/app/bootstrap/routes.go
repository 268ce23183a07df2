// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/homestay/internal/app/features/about"
	blogfeature "github.com/dalemusser/homestay/internal/app/features/blog"
	dashboardfeature "github.com/dalemusser/homestay/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/homestay/internal/app/features/errors"
	healthfeature "github.com/dalemusser/homestay/internal/app/features/health"
	homefeature "github.com/dalemusser/homestay/internal/app/features/home"
	hostingfeature "github.com/dalemusser/homestay/internal/app/features/hosting"
	locationsfeature "github.com/dalemusser/homestay/internal/app/features/locations"
	loginfeature "github.com/dalemusser/homestay/internal/app/features/login"
	logoutfeature "github.com/dalemusser/homestay/internal/app/features/logout"
	"github.com/dalemusser/homestay/internal/app/store/countcache"
	enquirystore "github.com/dalemusser/homestay/internal/app/store/enquiries"
	statsstore "github.com/dalemusser/homestay/internal/app/store/stats"
	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/ratelimit"
	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The site initializes the template engine, applies session middleware,
// and mounts the public pages, the hosting enquiry form, admin sign-in
// and the stats dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	// Dashboard counts come from MongoDB, cached in Redis when configured.
	var counter stats.Counter = statsstore.New(deps.MongoDatabase)
	var cache dashboardfeature.Invalidator
	if deps.Redis != nil {
		cc := countcache.New(counter, countcache.NewRedisKV(deps.Redis), appCfg.StatsCacheTTL, logger)
		counter = cc
		cache = cc
	}
	enquiries := enquirystore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Forwarded client IPs are only honoured behind a trusted proxy;
	// rate limiting keys on RemoteAddr.
	if appCfg.TrustedProxy {
		r.Use(middleware.RealIP)
	}

	// Unsafe methods need the token rendered into every form.
	r.Use(csrfMiddleware(appCfg.SessionKey, secure, http.HandlerFunc(errorsHandler.Forbidden), logger))

	// Loads SessionUser into context when signed in.
	r.Use(sessionMgr.LoadSessionUser)

	r.NotFound(errorsHandler.NotFound)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Redis, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(logger)))
	r.Mount("/about", aboutfeature.Routes(aboutfeature.NewHandler(logger)))
	r.Mount("/blog", blogfeature.Routes(blogfeature.NewHandler(logger)))
	r.Mount("/locations", locationsfeature.Routes(locationsfeature.NewHandler(errLog, logger)))

	formLimiter := ratelimit.NewFormLimiter(appCfg.EnquiryRateLimit)
	loginLimiter := ratelimit.NewLoginLimiter()
	trackLimiters(formLimiter, loginLimiter)

	hostingHandler := hostingfeature.NewHandler(enquiries, formLimiter, sessionMgr, errLog, logger)
	r.Mount("/hosting", hostingfeature.Routes(hostingHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(appCfg.AdminPasswordHash, sessionMgr, loginLimiter, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	r.Get("/forbidden", errorsHandler.Forbidden)

	// Admin dashboard
	dashboardHandler := dashboardfeature.NewHandler(counter, cache, enquiries, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}
