package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrammoRPG_Go/internal/testing/leaktest"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_BurstThen429(t *testing.T) {
	rl := NewRateLimiter(1, 3, nil)
	frozen := time.Now()
	rl.now = func() time.Time { return frozen }
	handler := rl.Middleware(okHandler())

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/players", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "request %d within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101:1234"), "other clients keep their own bucket")

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "token refilled")
}

func TestRateLimiter_SkipsOperationalPaths(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	handler := rl.Middleware(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 0, rl.Len())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(10, 10, nil)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("198.51.100.1")
	now = now.Add(LimiterIdleTTL / 2)
	rl.Allow("198.51.100.2")
	now = now.Add(LimiterIdleTTL/2 + time.Second)

	assert.Equal(t, 1, rl.Cleanup())
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiter_BoundedClients(t *testing.T) {
	rl := newRateLimiter(1, 1, nil, 2)

	assert.True(t, rl.Allow("203.0.113.1"))
	assert.True(t, rl.Allow("203.0.113.2"))
	assert.False(t, rl.Allow("203.0.113.1"))

	// a third client pushes out the least recently seen one (.2)
	assert.True(t, rl.Allow("203.0.113.3"))
	assert.Equal(t, 2, rl.Len())
	assert.True(t, rl.Allow("203.0.113.2"), "evicted client starts with a fresh bucket")
}

func TestRateLimiter_RunCleanupStops(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	rl := NewRateLimiter(10, 10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		rl.RunCleanup(ctx, time.Millisecond)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
