package endpoints

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/davidosoro/userhub/pkg/accounts"
	"github.com/davidosoro/userhub/pkg/cache"
	"github.com/davidosoro/userhub/pkg/config"
	"github.com/davidosoro/userhub/pkg/oauth"
	"github.com/davidosoro/userhub/pkg/server"
	"github.com/davidosoro/userhub/pkg/server/middleware"
	"github.com/davidosoro/userhub/pkg/server/store"
	"github.com/davidosoro/userhub/pkg/weather"
)

type testServerOptions struct {
	users   store.UsersStore
	health  store.HealthStore
	weather weather.Client
	oauth   oauth.Provider
	cache   *cache.SnapshotCache
	limiter middleware.Limiter
	cfg     *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		SubmissionsCacheTTL: 3600,
		RateLimitRequests:   100,
		RateLimitWindow:     900,
		TokenTTL:            3600,
	}
}

// newTestServer assembles a server around mocks and registers all routes.
// Unset collaborators default to mocks with no expectations.
func newTestServer(t *testing.T, opts testServerOptions) *server.Server {
	t.Helper()

	if opts.users == nil {
		opts.users = NewMockUsersStore()
	}
	if opts.health == nil {
		opts.health = NewMockHealthStore()
	}
	if opts.weather == nil {
		opts.weather = NewMockWeatherClient()
	}
	if opts.limiter == nil {
		opts.limiter = middleware.NewMemoryLimiter()
	}
	if opts.cfg == nil {
		opts.cfg = testConfig()
	}

	accountsService := accounts.NewService(opts.users, accounts.Config{
		EnforceUniqueEmail: opts.cfg.EnforceUniqueEmail,
		IssueLoginTokens:   opts.cfg.IssueLoginTokens,
		TokenKey:           []byte("test-token-key"),
		TokenTTL:           opts.cfg.LoginTokenTTL(),
	})

	s := server.NewServer(
		opts.users,
		opts.health,
		accountsService,
		opts.cache,
		opts.weather,
		opts.oauth,
		opts.limiter,
		opts.cfg,
		nil,
		"127.0.0.1",
		"0",
	)
	RegisterAll(s)
	return s
}

// newTestCache backs a SnapshotCache with miniredis
func newTestCache(t *testing.T) (*cache.SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(client, cache.SubmissionsKey), mr
}
