package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const ratelimitKeyPrefix = "userhub:ratelimit:"

// Limiter decides whether a keyed request is within its fixed-window budget
type Limiter interface {
	// Allow records a request against key and reports whether it is
	// within limit for the current window
	Allow(key string, limit int, window time.Duration) bool
}

// RedisLimiter implements Limiter with Redis fixed-window counters:
// INCR plus a conditional EXPIRE on the first hit of each window. When the
// backend is unreachable the request is allowed; rate limiting degrades
// open rather than taking the route down.
type RedisLimiter struct {
	client  redis.UniversalClient
	timeout time.Duration
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a RedisLimiter over the given client
func NewRedisLimiter(client redis.UniversalClient) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// Allow records a request against key and reports whether it is within budget
func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if limit <= 0 {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	redisKey := ratelimitKeyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Error("rate limiter backend error", "op", "incr", "error", err)
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			slog.Error("rate limiter backend error", "op", "expire", "error", err)
		}
	}
	return count <= int64(limit)
}

// MemoryLimiter implements Limiter with in-process fixed windows. Used when
// no Redis backend is configured; limits are then per-process only.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]memoryWindow
}

type memoryWindow struct {
	count     int
	windowEnd time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates an in-process Limiter
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{entries: make(map[string]memoryWindow)}
}

// Allow records a request against key and reports whether it is within budget
func (l *MemoryLimiter) Allow(key string, limit int, window time.Duration) bool {
	if limit <= 0 {
		return true
	}

	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.entries[key]
	if !ok || now.After(state.windowEnd) {
		l.entries[key] = memoryWindow{count: 1, windowEnd: now.Add(window)}
		return true
	}

	state.count++
	l.entries[key] = state
	return state.count <= limit
}

// RateLimit wraps a handler with a fixed-window limit keyed by keyFn.
// Requests over budget get 429 with a Retry-After hint.
func RateLimit(limiter Limiter, limit int, window time.Duration, keyFn func(*http.Request) string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := keyFn(r)
		if key == "" {
			key = ClientIP(r)
		}

		if !limiter.Allow(key, limit, window) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client address without the port. Used as the
// default rate-limit key.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		host = "unknown"
	}
	return host
}
