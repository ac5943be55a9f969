// Package db provides the PostgreSQL connection helper for UserHub.
//
// The connection is acquired once at startup by the composition root and
// injected into the stores; nothing in this module reaches for an ambient
// global connection.
package db
