package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionsKey is the single cache key for the submissions listing snapshot
const SubmissionsKey = "userhub:submissions"

// ErrUnavailable is returned when the cache backend cannot be reached.
// Callers must degrade to direct computation, never surface this upstream.
var ErrUnavailable = errors.New("cache unavailable")

// Result is the outcome of a cache read: a hit carrying the snapshot bytes,
// or a miss. An expired entry and an absent entry are indistinguishable.
type Result struct {
	Hit   bool
	Value []byte
}

// SnapshotCache stores a single serialized snapshot under a fixed key with a
// TTL enforced by the Redis backend.
type SnapshotCache struct {
	client  redis.UniversalClient
	key     string
	timeout time.Duration
}

// New creates a SnapshotCache over the given Redis client and key
func New(client redis.UniversalClient, key string) *SnapshotCache {
	return &SnapshotCache{
		client:  client,
		key:     key,
		timeout: 2 * time.Second,
	}
}

// Get returns the cached snapshot if it is still fresh. A missing or expired
// entry is a miss; a backend failure is ErrUnavailable.
func (c *SnapshotCache) Get(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Result{Hit: true, Value: value}, nil
}

// Put unconditionally overwrites the snapshot and resets its expiry to
// now + ttl
func (c *SnapshotCache) Put(ctx context.Context, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, c.key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
