package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
)

// Config describes how to reach the database and size the pool
type Config struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// Manager owns the process-wide connection pool. It is created once at
// startup and handed to every repository by the caller.
type Manager struct {
	cfg Config

	// connect performs one connect-and-migrate attempt
	connect func(ctx context.Context) (*pgxpool.Pool, error)
	sleep   func(ctx context.Context, d time.Duration) error

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewManager creates a manager; no connection is made until Initialize
func NewManager(cfg Config) *Manager {
	m := &Manager{cfg: cfg, sleep: sleepContext}
	m.connect = m.connectAndMigrate
	return m
}

// Initialize connects and applies the schema, retrying connection-class
// failures up to retries times with a fixed delay between attempts. Any other
// error is returned at once. Exhausting all attempts returns an error wrapping
// domain.ErrCouldNotConnect and the last failure.
func (m *Manager) Initialize(ctx context.Context, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		return m.pool, nil
	}
	if retries < 1 {
		retries = DefaultConnectRetries
	}
	if delay < 0 {
		delay = 0
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		pool, err := m.connect(ctx)
		if err == nil {
			metrics.DBConnectAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
			m.pool = pool
			return pool, nil
		}
		metrics.DBConnectAttempts.WithLabelValues(metrics.ResultFailure).Inc()

		if !IsConnectionError(err) {
			return nil, fmt.Errorf("%s: %w", ErrMsgInitializationFailed, err)
		}
		lastErr = err

		slog.Warn(LogMsgConnectAttemptFailed,
			"attempt", attempt,
			"max_attempts", retries,
			"error", err)

		if attempt == retries {
			break
		}
		slog.Info(LogMsgRetryingConnection, "delay", delay)
		if err := m.sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInitializationAborted, err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", domain.ErrCouldNotConnect, retries, lastErr)
}

// Pool returns the initialized pool, or nil before Initialize succeeds
func (m *Manager) Pool() *pgxpool.Pool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pool
}

// Shutdown closes the pool. Calling it before Initialize or twice is a no-op.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool == nil {
		return
	}
	m.pool.Close()
	m.pool = nil
	slog.Info(LogMsgDatabaseClosed)
}

func (m *Manager) connectAndMigrate(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, m.cfg.ConnString, m.cfg.MaxConns, m.cfg.MaxConnIdleTime, m.cfg.MaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// IsConnectionError reports whether err means the database could not be
// reached or is not accepting connections yet. Authentication failures,
// bad configuration and SQL errors are not connection errors.
func IsConnectionError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var parseErr *pgconn.ParseConfigError
	if errors.As(err, &parseErr) {
		return false
	}

	// Checked before ConnectError: a server-side rejection during connect arrives wrapped in a ConnectError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgCodeAdminShutdown, PgCodeCrashShutdown, PgCodeCannotConnectNow, PgCodeTooManyConnections:
			return true
		}
		return strings.HasPrefix(pgErr.Code, PgClassConnectionException)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return true
	}

	return pgconn.Timeout(err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
