package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxswap/internal/adapters/postgres"
	"fxswap/internal/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})
	require.NotEmpty(t, pgConnStr, "postgres container failed to start")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table price_observations restart identity`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)
	pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, db.Migrate(ctx, pool))

	pgConnStr = dsn
}

func TestObservationRepository_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewObservationRepository(pool)

	obs, err := repo.FetchObservations(context.Background())
	require.NoError(t, err)
	require.NotNil(t, obs)
	require.Empty(t, obs)
}

func TestObservationRepository_ReturnsRowsInInsertionOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewObservationRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		insert into price_observations(currency, price, observed_at) values
		('BTC', 51000, '2024-01-02T00:00:00Z'),
		('ETH', 3000, '2024-01-01T00:00:00Z'),
		('BTC', 50000, '2024-01-01T00:00:00Z'),
		('BTC', 51500, '2024-01-02T00:00:00Z')
	`)
	require.NoError(t, err)

	obs, err := repo.FetchObservations(ctx)
	require.NoError(t, err)
	require.Len(t, obs, 4)

	require.Equal(t, "BTC", obs[0].Currency)
	require.InDelta(t, 51000.0, obs[0].Price, 1e-9)
	require.True(t, obs[0].Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "ETH", obs[1].Currency)
	require.InDelta(t, 50000.0, obs[2].Price, 1e-9)
	require.InDelta(t, 51500.0, obs[3].Price, 1e-9)
}

func TestObservationRepository_ContextCanceled(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewObservationRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchObservations(ctx)
	require.Error(t, err)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	pool := setupPostgres(t)
	require.NoError(t, db.Migrate(context.Background(), pool))
}

func TestObservationRepository_Name(t *testing.T) {
	require.Equal(t, "postgres:price_observations", postgres.NewObservationRepository(nil).Name())
}
