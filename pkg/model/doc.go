// Package model defines the database models for UserHub.
//
// This package contains GORM models that map to the UserHub database schema.
//
// # Core Models
//
//   - User: a registered user with a bcrypt password hash
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - users: registered users, keyed by a server-assigned UUID
//
// Email is intentionally not declared unique at the storage layer; duplicate
// rejection is an application-level policy (see pkg/accounts).
package model
