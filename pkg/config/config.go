package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/userhub/config"
	ConfigFileName    = "userhub.yml"
)

// Config holds all UserHub configuration settings
type Config struct {
	// SubmissionsCacheTTL is the freshness window for the submissions
	// listing cache, in seconds
	SubmissionsCacheTTL int `yaml:"submissions_cache_ttl" json:"submissions_cache_ttl"`

	// RateLimitRequests is the number of requests allowed per window on
	// rate-limited routes
	RateLimitRequests int `yaml:"rate_limit_requests" json:"rate_limit_requests"`

	// RateLimitWindow is the rate limit window, in seconds
	RateLimitWindow int `yaml:"rate_limit_window" json:"rate_limit_window"`

	// SweepInterval is how often the retention sweep fires, in seconds
	SweepInterval int `yaml:"sweep_interval" json:"sweep_interval"`

	// RetentionAge is the maximum age of a user record before the
	// retention sweep removes it, in seconds
	RetentionAge int `yaml:"retention_age" json:"retention_age"`

	// EnforceUniqueEmail rejects registrations reusing an existing email.
	// Off by default: the storage layer does not declare email unique.
	EnforceUniqueEmail bool `yaml:"enforce_unique_email" json:"enforce_unique_email"`

	// IssueLoginTokens issues a signed JWT on successful login
	IssueLoginTokens bool `yaml:"issue_login_tokens" json:"issue_login_tokens"`

	// TokenTTL is the lifetime of issued login tokens, in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// WeatherAPIURL is the base URL of the weather upstream
	WeatherAPIURL string `yaml:"weather_api_url" json:"weather_api_url"`

	// WeatherAPIKey is the API key for the weather upstream
	WeatherAPIKey string `yaml:"weather_api_key" json:"weather_api_key"`

	// RedisAddr is the address of the Redis backend used for the
	// submissions cache and the rate limiter. Empty disables Redis;
	// the server falls back to direct computation and in-process limits.
	RedisAddr string `yaml:"redis_addr" json:"redis_addr"`

	// GitHubClientID is the OAuth application client ID
	GitHubClientID string `yaml:"github_client_id" json:"github_client_id"`

	// GitHubClientSecret is the OAuth application client secret
	GitHubClientSecret string `yaml:"github_client_secret" json:"github_client_secret"`

	// GitHubRedirectURL is the OAuth callback URL
	GitHubRedirectURL string `yaml:"github_redirect_url" json:"github_redirect_url"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		SubmissionsCacheTTL: 3600,
		RateLimitRequests:   100,
		RateLimitWindow:     900,
		SweepInterval:       86400,
		RetentionAge:        7 * 86400,
		EnforceUniqueEmail:  false,
		IssueLoginTokens:    false,
		TokenTTL:            3600,
		WeatherAPIURL:       "https://api.openweathermap.org/data/2.5/weather",
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("USERHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"submissions_cache_ttl", "rate_limit_requests", "rate_limit_window",
		"sweep_interval", "retention_age", "enforce_unique_email",
		"issue_login_tokens", "token_ttl", "weather_api_url",
		"weather_api_key", "redis_addr", "github_client_id",
		"github_client_secret", "github_redirect_url",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.SubmissionsCacheTTL != 0 {
		c.SubmissionsCacheTTL = file.SubmissionsCacheTTL
		c.sources["submissions_cache_ttl"] = "file"
	}
	if file.RateLimitRequests != 0 {
		c.RateLimitRequests = file.RateLimitRequests
		c.sources["rate_limit_requests"] = "file"
	}
	if file.RateLimitWindow != 0 {
		c.RateLimitWindow = file.RateLimitWindow
		c.sources["rate_limit_window"] = "file"
	}
	if file.SweepInterval != 0 {
		c.SweepInterval = file.SweepInterval
		c.sources["sweep_interval"] = "file"
	}
	if file.RetentionAge != 0 {
		c.RetentionAge = file.RetentionAge
		c.sources["retention_age"] = "file"
	}
	if file.EnforceUniqueEmail {
		c.EnforceUniqueEmail = true
		c.sources["enforce_unique_email"] = "file"
	}
	if file.IssueLoginTokens {
		c.IssueLoginTokens = true
		c.sources["issue_login_tokens"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.WeatherAPIURL != "" {
		c.WeatherAPIURL = file.WeatherAPIURL
		c.sources["weather_api_url"] = "file"
	}
	if file.WeatherAPIKey != "" {
		c.WeatherAPIKey = file.WeatherAPIKey
		c.sources["weather_api_key"] = "file"
	}
	if file.RedisAddr != "" {
		c.RedisAddr = file.RedisAddr
		c.sources["redis_addr"] = "file"
	}
	if file.GitHubClientID != "" {
		c.GitHubClientID = file.GitHubClientID
		c.sources["github_client_id"] = "file"
	}
	if file.GitHubClientSecret != "" {
		c.GitHubClientSecret = file.GitHubClientSecret
		c.sources["github_client_secret"] = "file"
	}
	if file.GitHubRedirectURL != "" {
		c.GitHubRedirectURL = file.GitHubRedirectURL
		c.sources["github_redirect_url"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("USERHUB_SUBMISSIONS_CACHE_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SubmissionsCacheTTL = i
			c.sources["submissions_cache_ttl"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_RATE_LIMIT_REQUESTS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RateLimitRequests = i
			c.sources["rate_limit_requests"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_RATE_LIMIT_WINDOW"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RateLimitWindow = i
			c.sources["rate_limit_window"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_SWEEP_INTERVAL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SweepInterval = i
			c.sources["sweep_interval"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_RETENTION_AGE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RetentionAge = i
			c.sources["retention_age"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_ENFORCE_UNIQUE_EMAIL"); val != "" {
		c.EnforceUniqueEmail = val == "true" || val == "1"
		c.sources["enforce_unique_email"] = "environment"
	}
	if val := os.Getenv("USERHUB_ISSUE_LOGIN_TOKENS"); val != "" {
		c.IssueLoginTokens = val == "true" || val == "1"
		c.sources["issue_login_tokens"] = "environment"
	}
	if val := os.Getenv("USERHUB_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("USERHUB_WEATHER_API_URL"); val != "" {
		c.WeatherAPIURL = val
		c.sources["weather_api_url"] = "environment"
	}
	if val := os.Getenv("USERHUB_WEATHER_API_KEY"); val != "" {
		c.WeatherAPIKey = val
		c.sources["weather_api_key"] = "environment"
	}
	if val := os.Getenv("USERHUB_REDIS_ADDR"); val != "" {
		c.RedisAddr = val
		c.sources["redis_addr"] = "environment"
	}
	if val := os.Getenv("USERHUB_GITHUB_CLIENT_ID"); val != "" {
		c.GitHubClientID = val
		c.sources["github_client_id"] = "environment"
	}
	if val := os.Getenv("USERHUB_GITHUB_CLIENT_SECRET"); val != "" {
		c.GitHubClientSecret = val
		c.sources["github_client_secret"] = "environment"
	}
	if val := os.Getenv("USERHUB_GITHUB_REDIRECT_URL"); val != "" {
		c.GitHubRedirectURL = val
		c.sources["github_redirect_url"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// CacheTTL returns the submissions cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.SubmissionsCacheTTL) * time.Second
}

// RateWindow returns the rate limit window as a duration
func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateLimitWindow) * time.Second
}

// SweepEvery returns the sweep interval as a duration
func (c *Config) SweepEvery() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

// RetentionMaxAge returns the retention age as a duration
func (c *Config) RetentionMaxAge() time.Duration {
	return time.Duration(c.RetentionAge) * time.Second
}

// LoginTokenTTL returns the login token TTL as a duration
func (c *Config) LoginTokenTTL() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// OAuthEnabled reports whether the GitHub OAuth collaborator is configured
func (c *Config) OAuthEnabled() bool {
	return c.GitHubClientID != "" && c.GitHubClientSecret != ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.SubmissionsCacheTTL <= 0 {
		return fmt.Errorf("submissions_cache_ttl must be positive, got %d", c.SubmissionsCacheTTL)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("rate_limit_requests must be positive, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be positive, got %d", c.RateLimitWindow)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive, got %d", c.SweepInterval)
	}
	if c.RetentionAge <= 0 {
		return fmt.Errorf("retention_age must be positive, got %d", c.RetentionAge)
	}
	if c.IssueLoginTokens && os.Getenv("USERHUB_TOKEN_KEY") == "" {
		return fmt.Errorf("issue_login_tokens requires USERHUB_TOKEN_KEY to be set")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "submissions_cache_ttl", Value: strconv.Itoa(c.SubmissionsCacheTTL), Source: c.Source("submissions_cache_ttl")},
		{Name: "rate_limit_requests", Value: strconv.Itoa(c.RateLimitRequests), Source: c.Source("rate_limit_requests")},
		{Name: "rate_limit_window", Value: strconv.Itoa(c.RateLimitWindow), Source: c.Source("rate_limit_window")},
		{Name: "sweep_interval", Value: strconv.Itoa(c.SweepInterval), Source: c.Source("sweep_interval")},
		{Name: "retention_age", Value: strconv.Itoa(c.RetentionAge), Source: c.Source("retention_age")},
		{Name: "enforce_unique_email", Value: strconv.FormatBool(c.EnforceUniqueEmail), Source: c.Source("enforce_unique_email")},
		{Name: "issue_login_tokens", Value: strconv.FormatBool(c.IssueLoginTokens), Source: c.Source("issue_login_tokens")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "weather_api_url", Value: c.WeatherAPIURL, Source: c.Source("weather_api_url")},
		{Name: "weather_api_key", Value: maskSecret(c.WeatherAPIKey), Source: c.Source("weather_api_key")},
		{Name: "redis_addr", Value: c.RedisAddr, Source: c.Source("redis_addr")},
		{Name: "github_client_id", Value: c.GitHubClientID, Source: c.Source("github_client_id")},
		{Name: "github_client_secret", Value: maskSecret(c.GitHubClientSecret), Source: c.Source("github_client_secret")},
		{Name: "github_redirect_url", Value: c.GitHubRedirectURL, Source: c.Source("github_redirect_url")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
