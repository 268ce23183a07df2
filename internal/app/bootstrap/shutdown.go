// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"errors"
	"sync"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// stopper is a rate limiter with a background sweeper.
type stopper interface{ Stop() }

var (
	limitersMu sync.Mutex
	limiters   []stopper
)

// trackLimiters records limiters built by BuildHandler so Shutdown can
// stop their sweepers.
func trackLimiters(ls ...stopper) {
	limitersMu.Lock()
	defer limitersMu.Unlock()
	limiters = append(limiters, ls...)
}

func stopLimiters() {
	limitersMu.Lock()
	defer limitersMu.Unlock()
	for _, l := range limiters {
		l.Stop()
	}
	limiters = nil
}

// Shutdown cleanly tears down DB connections and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	stopLimiters()

	var errs []error
	if deps.Redis != nil {
		logger.Info("closing Redis client")
		if err := deps.Redis.Close(); err != nil {
			logger.Error("Redis close failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
