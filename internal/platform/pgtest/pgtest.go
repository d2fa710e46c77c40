// Package pgtest starts a throwaway PostgreSQL container with the schema applied,
// for integration test suites.
package pgtest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/abgdnv/monapi/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SkipEnv disables integration tests when set to "1".
const SkipEnv = "MONAPI_SKIP_INTEGRATION_TESTS"

// SkipIfDisabled skips t when integration tests are switched off.
func SkipIfDisabled(t *testing.T) {
	t.Helper()
	if os.Getenv(SkipEnv) == "1" {
		t.Skip("Skipping integration tests based on " + SkipEnv + " env var")
	}
}

// Postgres is a running container plus a pool connected to it.
type Postgres struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	URL       string
}

// Start runs a PostgreSQL container, waits for it to accept connections and applies all migrations.
func Start(ctx context.Context, logger *slog.Logger) (*Postgres, error) {
	// 1. Start a PostgreSQL container. Wait for the container to be ready.
	container, err := postgres.Run(ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("monapi"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run PostgreSQL container: %w", err)
	}
	pg := &Postgres{Container: container}

	// 2. Get the connection string from the container
	pg.URL, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pg.Terminate(ctx, logger)
		return nil, fmt.Errorf("failed to get connection string from container: %w", err)
	}

	// 3. Create a pool and ping until the database answers
	pg.Pool, err = pgxpool.New(ctx, pg.URL)
	if err != nil {
		pg.Terminate(ctx, logger)
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	for i := range 10 {
		logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		if err = pg.Pool.Ping(ctx); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		pg.Terminate(ctx, logger)
		return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
	}

	// 4. Apply the embedded migrations
	if err := migrations.Up(pg.URL, logger); err != nil {
		pg.Terminate(ctx, logger)
		return nil, err
	}
	logger.Info("Migrations applied for integration tests")
	return pg, nil
}

// Terminate closes the pool and removes the container.
func (p *Postgres) Terminate(ctx context.Context, logger *slog.Logger) {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.Container != nil {
		if err := p.Container.Terminate(ctx); err != nil {
			logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}
