// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/homestay/internal/app/system/auth"
	"github.com/dalemusser/homestay/internal/app/system/timeouts"
	"github.com/dalemusser/homestay/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the homestay site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: HOMESTAY_MONGO_URI, HOMESTAY_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "homestay", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size (default: 5)"},

	// Redis count cache
	{Name: "redis_addr", Default: "", Desc: "Redis address for the dashboard count cache (blank disables it)"},
	{Name: "redis_password", Default: "", Desc: "Redis password"},
	{Name: "redis_db", Default: 0, Desc: "Redis database number"},
	{Name: "stats_cache_ttl", Default: "60s", Desc: "How long dashboard counts stay cached (e.g., 30s, 5m)"},

	// Sessions
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: auth.DefaultSessionName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "12h", Desc: "Session cookie lifetime"},

	// Dashboard sign-in
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the dashboard admin password"},

	// Site
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Business name used in page titles"},
	{Name: "site_description", Default: models.DefaultSiteDescription, Desc: "Default SEO description"},
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of the site"},

	{Name: "enquiry_rate_limit", Default: 5, Desc: "Hosting enquiries allowed per client IP per hour"},

	// Proxy
	{Name: "trusted_proxy", Default: false, Desc: "Trust X-Forwarded-For/X-Real-IP (only behind a reverse proxy that sets them)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, HOMESTAY_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HOMESTAY", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		RedisAddr:     appValues.String("redis_addr"),
		RedisPassword: appValues.String("redis_password"),
		RedisDB:       appValues.Int("redis_db"),
		StatsCacheTTL: appValues.Duration("stats_cache_ttl", time.Minute),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 12*time.Hour),

		AdminPasswordHash: appValues.String("admin_password_hash"),

		SiteName:        appValues.String("site_name"),
		SiteDescription: appValues.String("site_description"),
		BaseURL:         appValues.String("base_url"),

		EnquiryRateLimit: appValues.Int("enquiry_rate_limit"),

		TrustedProxy: appValues.Bool("trusted_proxy"),
	}

	// ConnectDB pings under timeouts.Ping, so overrides must land first.
	applyTimeoutOverrides(logger)

	return coreCfg, appCfg, nil
}

// applyTimeoutOverrides reads HOMESTAY_TIMEOUT_* and logs the result.
func applyTimeoutOverrides(logger *zap.Logger) {
	if n := timeouts.ConfigureFromEnv("HOMESTAY"); n > 0 {
		t := timeouts.Current()
		logger.Info("timeouts overridden from environment",
			zap.Int("overrides", n),
			zap.Duration("ping", t.Ping),
			zap.Duration("short", t.Short),
			zap.Duration("medium", t.Medium),
			zap.Duration("long", t.Long))
	}
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// A missing admin password hash only disables dashboard sign-in; a
// malformed one is an error.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if err := auth.ValidateHash(appCfg.AdminPasswordHash); err != nil {
		if !errors.Is(err, auth.ErrNoAdminPassword) {
			return err
		}
		logger.Warn("admin_password_hash not set; dashboard sign-in is disabled")
	}

	if appCfg.EnquiryRateLimit < 1 {
		return fmt.Errorf("enquiry_rate_limit must be at least 1, got %d", appCfg.EnquiryRateLimit)
	}
	if appCfg.RedisAddr != "" && appCfg.StatsCacheTTL <= 0 {
		return fmt.Errorf("stats_cache_ttl must be positive when redis_addr is set")
	}

	return nil
}
