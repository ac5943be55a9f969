// Package config provides configuration management for UserHub.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - DATABASE_URL: Database connection
//   - USERHUB_REDIS_ADDR: Redis backend for cache and rate limiting
//   - USERHUB_WEATHER_API_KEY: Weather upstream API key
//   - USERHUB_GITHUB_CLIENT_ID / USERHUB_GITHUB_CLIENT_SECRET: OAuth app
//   - USERHUB_TOKEN_KEY: HMAC key for issued login tokens
//   - PORT: Server listen port
package config
