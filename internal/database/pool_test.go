package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmartell/amorcito-api/internal/testing/leaktest"
)

var testConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testConnString, terminate = startPostgres(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// startPostgres brings up a disposable container mirroring the app's
// database. Failures (usually no Docker) leave testConnString empty
// and the integration tests skip themselves.
func startPostgres(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic while starting postgres: %v\n", r)
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("amorcito_test"),
		postgres.WithUsername("amorcito"),
		postgres.WithPassword("amorcito"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: postgres container unavailable: %v\n", err)
		return "", func() {}
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: no connection string: %v\n", err)
		container.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// newTestPool opens a migrated pool against the shared container, or
// skips the test when none is running.
func newTestPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(context.Background(), testConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(pool))
	return pool
}

func TestNewPool_RejectsBadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "host=localhost port=notaport", 2, time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestNewPool_FallsBackOnBadLimit(t *testing.T) {
	pool := newTestPool(t, 0)

	assert.Equal(t, int32(DefaultMaxConns), pool.Config().MaxConns)
}

func TestPool_ReleasesAfterStateReads(t *testing.T) {
	pool := newTestPool(t, 5)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "acquire %d", i)

		var rows int
		err = conn.QueryRow(ctx, "SELECT COUNT(*) FROM app_state").Scan(&rows)
		assert.NoError(t, err)
		assert.LessOrEqual(t, rows, 1, "app_state never holds more than one row")

		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "every connection must return to the pool")
}

func TestPool_BlocksWhenExhausted(t *testing.T) {
	maxConns := 3
	pool := newTestPool(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	held := make([]*pgxpool.Conn, maxConns)
	for i := range held {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	// With the pool drained, one more acquire must time out
	shortCtx, shortCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer shortCancel()
	_, err := pool.Acquire(shortCtx)
	assert.Error(t, err, "acquire on a drained pool must not succeed")

	// Freeing one slot unblocks acquisition again
	held[0].Release()
	conn, err := pool.Acquire(ctx)
	assert.NoError(t, err)
	if conn != nil {
		conn.Release()
	}

	for _, c := range held[1:] {
		c.Release()
	}
}

func TestPool_QueryErrorsDoNotLeakConnections(t *testing.T) {
	pool := newTestPool(t, 5)
	ctx := context.Background()

	before := pool.Stat().AcquiredConns()

	for i := 0; i < 5; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)

		_, err = conn.Query(ctx, "SELECT estrellas FROM tabla_inexistente")
		assert.Error(t, err)

		conn.Release()
	}

	assert.Equal(t, before, pool.Stat().AcquiredConns())
}

func TestPool_ConcurrentStateReads(t *testing.T) {
	pool := newTestPool(t, 10)

	snap := leaktest.Take(t)

	var wg sync.WaitGroup
	workers := 20
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			ctx := context.Background()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				t.Errorf("worker %d: acquire failed: %v", id, err)
				return
			}
			defer conn.Release()

			var rows int
			if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM app_state").Scan(&rows); err != nil {
				t.Errorf("worker %d: query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())

	// The pool keeps a couple of background watchers alive
	snap.Assert(2)
}
