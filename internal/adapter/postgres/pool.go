package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildline/crm-backend/internal/config"
)

// NewPool opens a PostgreSQL pool configured from cfg and waits until the
// database answers a ping. Failed pings are retried cfg.ConnectAttempts times,
// doubling cfg.ConnectBackoff between attempts, so the API can start before
// the database container is ready.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.ApplicationName != "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := waitReady(ctx, pool, cfg.ConnectAttempts, cfg.ConnectBackoff, logger); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

func waitReady(ctx context.Context, db pinger, attempts int, backoff time.Duration, logger *slog.Logger) error {
	attempts = max(attempts, 1)

	var err error
	for i := 1; ; i++ {
		if err = db.Ping(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		logger.WarnContext(ctx, "database not ready, retrying",
			slog.Int("attempt", i),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("ping database after %d attempts: %w", attempts, err)
}
