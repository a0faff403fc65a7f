package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// EnsureSchema creates the collector tables when they do not exist yet. The
// collector is a dev tool, so it bootstraps its own schema instead of relying
// on migrations.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS flow_events (
			id          BIGSERIAL PRIMARY KEY,
			batch_id    TEXT        NOT NULL,
			cycle       INT         NOT NULL,
			producer    TEXT        NOT NULL,
			event_ts    BIGINT      NOT NULL,
			event_type  TEXT        NOT NULL,
			subject     TEXT        NOT NULL,
			detail      TEXT        NOT NULL,
			received_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}
