package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/postgres"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/s3"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/sqlite"
)

// OpenStore connects the configured backend and brings its schema up to date.
func OpenStore(ctx context.Context, cfg StorageConfig, logger *slog.Logger) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.Backend {
	case memory.Backend:
		st = memory.NewStore()
	case sqlite.Backend:
		st, err = sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	case postgres.Backend:
		st, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	case s3.Backend:
		st, err = s3.NewStore(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply %s migrations: %w", cfg.Backend, err)
	}

	logger.Info("storage ready", slog.String("backend", st.Backend()))
	return st, nil
}
