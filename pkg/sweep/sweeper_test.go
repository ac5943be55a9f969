package sweep

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidosoro/userhub/pkg/model"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// recordingStore tracks DeleteUsersOlderThan calls and serves canned users
type recordingStore struct {
	mu      sync.Mutex
	users   []model.User
	cutoffs []time.Time
	err     error
}

var _ store.UsersStore = (*recordingStore)(nil)

func (r *recordingStore) CreateUser(user *model.User) (*model.User, error) { return user, nil }

func (r *recordingStore) FindUserByEmail(string) (*model.User, error) {
	return nil, store.ErrNotFound
}

func (r *recordingStore) ListUsers() ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *recordingStore) DeleteUserByID(string) (bool, error) { return false, nil }

func (r *recordingStore) DeleteUsersOlderThan(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cutoffs = append(r.cutoffs, cutoff)
	if r.err != nil {
		return 0, r.err
	}

	var kept []model.User
	var removed int64
	for _, u := range r.users {
		if u.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, u)
	}
	r.users = kept
	return removed, nil
}

func (r *recordingStore) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cutoffs)
}

func TestRunOnceRemovesOnlyExpiredRecords(t *testing.T) {
	now := time.Now().UTC()
	rs := &recordingStore{users: []model.User{
		{ID: "a", CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{ID: "b", CreatedAt: now.Add(-1 * 24 * time.Hour)},
	}}

	s := New(rs, time.Hour, 7*24*time.Hour)

	removed, err := s.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	remaining, _ := rs.ListUsers()
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].ID)
}

func TestRunOnceCutoffIsNowMinusMaxAge(t *testing.T) {
	rs := &recordingStore{}
	s := New(rs, time.Hour, 7*24*time.Hour)

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, err := s.RunOnce()
	require.NoError(t, err)

	require.Len(t, rs.cutoffs, 1)
	assert.Equal(t, fixed.Add(-7*24*time.Hour), rs.cutoffs[0])
}

func TestStartSweepsImmediatelyAndOnInterval(t *testing.T) {
	rs := &recordingStore{}
	s := New(rs, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for rs.calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, got %d", rs.calls())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}

func TestStartSurvivesStoreErrors(t *testing.T) {
	rs := &recordingStore{err: errors.New("connection refused")}
	s := New(rs, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for rs.calls() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected sweeper to keep running after errors, got %d calls", rs.calls())
		case <-time.After(5 * time.Millisecond):
		}
	}
}
