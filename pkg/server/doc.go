// Package server provides the HTTP server for the UserHub API.
//
// The server uses gorilla/mux for routing and gorilla/handlers for request
// logging. Collaborators (stores, cache, weather client, OAuth provider,
// rate limiter) are injected at construction so tests can swap them out.
//
// # Server Setup
//
//	srv := server.NewServer(users, health, accountsService, snapshotCache,
//	    weatherClient, oauthProvider, limiter, cfg, db, "0.0.0.0", "3000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// Endpoints are registered via the endpoints subpackage:
//
//   - GET  /                     - registration form page
//   - GET  /health               - database connectivity check
//   - POST /submit               - register a user (form or JSON body)
//   - GET  /api/submissions      - cached listing of registered users
//   - DELETE /api/submissions/{id} - remove a user record
//   - POST /login                - authenticate with email and password
//   - GET  /weather/{city}       - rate-limited weather proxy
//   - GET  /auth/github          - GitHub OAuth redirect
//   - GET  /auth/github/callback - GitHub OAuth code exchange
package server
