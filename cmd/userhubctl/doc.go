// Package main provides userhubctl, the UserHub server and administration CLI.
//
// UserHub is a form-submission service: users register with a name, email,
// age and password, log back in with their credentials, and operators get a
// cached listing of submissions plus a few convenience routes (weather proxy,
// GitHub OAuth login).
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: HTTP endpoint handlers
//   - pkg/server/middleware: rate limiting middleware
//   - pkg/accounts: registration and authentication flows
//   - pkg/cache: submissions listing snapshot cache
//   - pkg/weather: weather upstream client
//   - pkg/oauth: GitHub OAuth provider
//   - pkg/sweep: retention sweeper
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	userhubctl db migrate
//
//	# Start the server
//	userhubctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - USERHUB_REDIS_ADDR: Redis address for the cache and rate limiter (optional)
//   - USERHUB_LOG_LEVEL: Log level (debug, info, warn, error)
//   - USERHUB_WEATHER_API_KEY: Weather upstream API key
//   - USERHUB_GITHUB_CLIENT_ID / USERHUB_GITHUB_CLIENT_SECRET: OAuth app credentials
//   - PORT: Server port (default: 3000)
package main
