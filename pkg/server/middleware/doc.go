// Package middleware provides HTTP middleware for the UserHub server.
//
// Rate limiting is a generic wrapper applied at route registration, not
// hard-wired into any one handler: any route can be limited with its own
// budget, window and key function. Counters use Redis fixed windows when a
// backend is configured and fall back to per-process windows otherwise.
package middleware
