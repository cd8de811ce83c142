package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"examplegen/internal/domain"
)

const (
	ledgerAppName        = "examplegen"
	ledgerMaxConns       = 4
	ledgerConnectTimeout = 10 * time.Second
)

// NewDBPool connects the task ledger. The CLI runs tasks sequentially so a
// small pool is enough; serve shares the same limits.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is required for the task ledger", domain.ErrInvalidConfig)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse DATABASE_URL: %v", domain.ErrInvalidConfig, err)
	}
	poolCfg.MaxConns = ledgerMaxConns
	poolCfg.MinConns = 0
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.ConnConfig.ConnectTimeout = ledgerConnectTimeout
	if poolCfg.ConnConfig.RuntimeParams == nil {
		poolCfg.ConnConfig.RuntimeParams = map[string]string{}
	}
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = ledgerAppName
	}

	ctx, cancel := context.WithTimeout(ctx, ledgerConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect ledger database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping ledger database: %w", err)
	}
	return pool, nil
}
