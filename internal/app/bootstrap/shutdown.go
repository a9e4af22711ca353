// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background workers and tears down the database
// connection.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if retentionWorker != nil {
		retentionWorker.Stop()
	}
	if deps.SQLDB != nil {
		logger.Info("closing sqlite database")
		if err := deps.SQLDB.Close(); err != nil {
			logger.Error("sqlite close failed", zap.Error(err))
			return err
		}
	}
	return nil
}
