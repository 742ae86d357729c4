// Package repositories selects and opens the configured storage backend.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/djoufack/cashpilot/internal/core/ports/repositories"
	"github.com/djoufack/cashpilot/internal/platform/config"
	"github.com/djoufack/cashpilot/internal/repositories/database/gormstore"
	"github.com/djoufack/cashpilot/internal/repositories/database/pgsql"
	"github.com/djoufack/cashpilot/pkg/database"
)

// Open connects the backend named by cfg.StoreDriver and returns its
// repositories with a function releasing the connections. PostgreSQL
// schemas are migrated first when migrate is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		store, err := gormstore.Open(cfg.SQLitePath, logger.Enabled(ctx, slog.LevelDebug))
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))
		return store.Provider(), func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing SQLite store", slog.String("error", err.Error()))
			}
		}, nil

	case config.StoreDriverPostgres:
		if migrate {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
