package repository_test

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const catalogImage = "postgres:17.6-alpine3.22"

// startCatalogDB runs a throwaway Postgres with every up migration applied and
// returns a pool connected to it. The caller closes the pool and terminates
// the container.
func startCatalogDB(ctx context.Context) (testcontainers.Container, *pgxpool.Pool, error) {
	migrations, err := filepath.Glob("../migrations/*.up.sql")
	if err != nil {
		return nil, nil, fmt.Errorf("filepath.Glob: %w", err)
	}
	if len(migrations) == 0 {
		return nil, nil, fmt.Errorf("no migrations found")
	}

	ctr, err := postgres.Run(ctx, catalogImage,
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("storefront"),
		postgres.WithPassword("storefront"),
		postgres.WithInitScripts(migrations...),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return ctr, nil, fmt.Errorf("ctr.ConnectionString: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return ctr, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ctr, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return ctr, pool, nil
}
