package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// testcontainers panics when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestManager_InitializeAppliesSchema(t *testing.T) {
	requireDB(t)

	m := NewManager(Config{ConnString: testDBConnString, MaxConns: 4, MaxConnIdleTime: time.Minute, MaxConnLifetime: 5 * time.Minute})
	defer m.Shutdown()

	pool, err := m.Initialize(context.Background(), 3, 0)
	require.NoError(t, err)
	require.NotNil(t, pool)

	for _, table := range []string{"items", "inventories", "players", "characters", "market_listings", "users"} {
		var exists bool
		err := pool.QueryRow(context.Background(),
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}

func TestManager_MigrationsAreIdempotent(t *testing.T) {
	requireDB(t)

	first := NewManager(Config{ConnString: testDBConnString, MaxConns: 2})
	_, err := first.Initialize(context.Background(), 1, 0)
	require.NoError(t, err)
	first.Shutdown()

	second := NewManager(Config{ConnString: testDBConnString, MaxConns: 2})
	defer second.Shutdown()
	pool, err := second.Initialize(context.Background(), 1, 0)
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), pool), "re-running migrations should be a no-op")
}

func TestMigrationStatus_AllApplied(t *testing.T) {
	requireDB(t)

	m := NewManager(Config{ConnString: testDBConnString, MaxConns: 2})
	defer m.Shutdown()
	pool, err := m.Initialize(context.Background(), 1, 0)
	require.NoError(t, err)

	status, err := MigrationStatus(context.Background(), pool)
	require.NoError(t, err)
	require.Len(t, status, 3)
	for i, s := range status {
		assert.Equal(t, int64(i+1), s.Source.Version)
		assert.Equal(t, goose.StateApplied, s.State)
	}
}

func TestManager_ConcurrentMigrations(t *testing.T) {
	requireDB(t)

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := NewManager(Config{ConnString: testDBConnString, MaxConns: 2})
			defer m.Shutdown()
			_, err := m.Initialize(context.Background(), 1, 0)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestManager_BadPasswordIsFatal(t *testing.T) {
	requireDB(t)

	cfg, err := pgxpool.ParseConfig(testDBConnString)
	require.NoError(t, err)
	badConn := fmt.Sprintf("postgres://testuser:wrong@%s:%d/testdb?sslmode=disable",
		cfg.ConnConfig.Host, cfg.ConnConfig.Port)

	m := NewManager(Config{ConnString: badConn, MaxConns: 2})
	start := time.Now()
	_, err = m.Initialize(context.Background(), 5, time.Second)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCouldNotConnect)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "28P01", pgErr.Code)
	assert.Less(t, time.Since(start), time.Second, "auth failures must not be retried")
}

func TestPool_ConnectionsReleased(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "Failed to acquire connection on iteration %d", i)

		var result int
		require.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)

		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	requireDB(t)

	maxConns := 3
	pool, err := NewPool(context.Background(), testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conns[i], err = pool.Acquire(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	shortCtx, shortCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer shortCancel()
	_, err = pool.Acquire(shortCtx)
	assert.Error(t, err, "Should fail to acquire when pool is exhausted")

	for _, c := range conns {
		c.Release()
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, 10, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("Worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checker.Check(2)
}
