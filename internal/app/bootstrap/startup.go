// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/homestay/internal/app/resources"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Configure(viewdata.Defaults{
		SiteName:    appCfg.SiteName,
		Description: appCfg.SiteDescription,
		BaseURL:     appCfg.BaseURL,
	})

	return nil
}
