package server

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/osse101/GrammoRPG_Go/internal/handler"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client-IP token bucket. At most LimiterMaxClients
// clients are tracked; past that the least recently seen one is dropped.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *clientLimiter]
	rate     rate.Limit
	burst    int
	proxies  trustedProxies
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter allows rps requests per second per client with the given burst
func NewRateLimiter(rps float64, burst int, trusted []string) *RateLimiter {
	return newRateLimiter(rps, burst, trusted, LimiterMaxClients)
}

func newRateLimiter(rps float64, burst int, trusted []string, maxClients int) *RateLimiter {
	limiters, err := lru.New[string, *clientLimiter](maxClients)
	if err != nil {
		// only a non-positive size fails
		limiters, _ = lru.New[string, *clientLimiter](LimiterMaxClients)
	}
	return &RateLimiter{
		limiters: limiters,
		rate:     rate.Limit(rps),
		burst:    burst,
		proxies:  newTrustedProxies(trusted),
		idleTTL:  LimiterIdleTTL,
		now:      time.Now,
	}
}

// Allow reports whether ip may make a request now
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.limiters.Get(ip)
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters.Add(ip, cl)
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Middleware rejects requests over the client's rate with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isOperationalPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ip := extractIP(r, rl.proxies)
		if !rl.Allow(ip) {
			metrics.HTTPRateLimited.Inc()
			logger.FromContext(r.Context()).Warn(SecurityAlertRateLimited, "ip", ip, "path", r.URL.Path)
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(1))
			handler.RespondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup evicts limiters idle for longer than the TTL and returns how many
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	evicted := 0
	// Keys are ordered oldest first, so the scan stops at the first live client.
	for _, ip := range rl.limiters.Keys() {
		cl, ok := rl.limiters.Peek(ip)
		if !ok {
			continue
		}
		if !cl.lastSeen.Before(cutoff) {
			break
		}
		rl.limiters.Remove(ip)
		evicted++
	}
	return evicted
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.limiters.Len()
}

// RunCleanup evicts idle limiters every interval until ctx is done
func (rl *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := rl.Cleanup(); n > 0 {
				logger.Debug(LogMsgLimitersEvicted, "count", n)
			}
		}
	}
}
