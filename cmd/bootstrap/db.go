package bootstrap

import (
	"context"
	"log/slog"

	"lounge-billing/internal/infra/db"
	"lounge-billing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects eagerly; a bad DSN fails fx startup.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected",
		"host", cfg.DB.Host,
		"db", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			slog.Info("closing database pool",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
