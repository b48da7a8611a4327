package db

import (
	"context"
	"fmt"
	"time"

	"fxswap/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "fxswap"

// CreatePoolAndPing opens the pool backing the postgres feed source and
// fails fast when the server does not answer.
func CreatePoolAndPing(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("invalid db_server config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnIdleTime = time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return pool, nil
}
