package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/davidosoro/userhub/pkg/audit"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// Sweeper periodically removes user records older than a retention
// threshold. It runs independently of the HTTP request path; a failed sweep
// is logged and audited but never affects request handling.
type Sweeper struct {
	users    store.UsersStore
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time
}

// New creates a Sweeper that fires every interval and removes records
// created more than maxAge ago
func New(users store.UsersStore, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		users:    users,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Start begins the sweep loop. It runs an immediate sweep, then sweeps on
// the configured interval. Start blocks until the context is canceled.
func (s *Sweeper) Start(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("retention sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// RunOnce performs a single sweep and returns the number of records removed
func (s *Sweeper) RunOnce() (int64, error) {
	cutoff := s.now().Add(-s.maxAge)
	return s.users.DeleteUsersOlderThan(cutoff)
}

func (s *Sweeper) sweep() {
	removed, err := s.RunOnce()
	if err != nil {
		slog.Error("retention sweep failed", "error", err)
		audit.Log(audit.SweepEvent{Success: false, ErrorMessage: err.Error()})
		return
	}
	if removed > 0 {
		slog.Info("retention sweep removed records", "count", removed)
	}
	audit.Log(audit.SweepEvent{Removed: removed, Success: true})
}
