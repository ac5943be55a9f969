package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("USERHUB_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3600, cfg.SubmissionsCacheTTL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 900, cfg.RateLimitWindow)
	assert.Equal(t, 7*86400, cfg.RetentionAge)
	assert.False(t, cfg.EnforceUniqueEmail)
	assert.False(t, cfg.IssueLoginTokens)
	assert.Equal(t, "default", cfg.Source("rate_limit_requests"))
}

func TestFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("submissions_cache_ttl: 60\nenforce_unique_email: true\nredis_addr: 127.0.0.1:6379\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o600))
	t.Setenv("USERHUB_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.SubmissionsCacheTTL)
	assert.Equal(t, "file", cfg.Source("submissions_cache_ttl"))
	assert.True(t, cfg.EnforceUniqueEmail)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	// untouched attributes stay at defaults
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, "default", cfg.Source("rate_limit_requests"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("rate_limit_requests: 10\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o600))
	t.Setenv("USERHUB_CONFIG_PATH", dir)
	t.Setenv("USERHUB_RATE_LIMIT_REQUESTS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.RateLimitRequests)
	assert.Equal(t, "environment", cfg.Source("rate_limit_requests"))
}

func TestBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0o600))
	t.Setenv("USERHUB_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("USERHUB_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.RateLimitWindow = 0
	assert.Error(t, cfg.Validate())

	cfg, _ = Load()
	cfg.IssueLoginTokens = true
	os.Unsetenv("USERHUB_TOKEN_KEY")
	assert.Error(t, cfg.Validate())

	t.Setenv("USERHUB_TOKEN_KEY", "s3cret")
	assert.NoError(t, cfg.Validate())
}

func TestSecretsMaskedInAttributes(t *testing.T) {
	t.Setenv("USERHUB_CONFIG_PATH", t.TempDir())
	t.Setenv("USERHUB_WEATHER_API_KEY", "topsecret")

	cfg, err := Load()
	require.NoError(t, err)

	for _, attr := range cfg.Attributes() {
		if attr.Name == "weather_api_key" {
			assert.Equal(t, "********", attr.Value)
			assert.Equal(t, "environment", attr.Source)
			return
		}
	}
	t.Fatal("weather_api_key attribute not found")
}
