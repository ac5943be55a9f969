// Package audit provides audit logging for UserHub operations.
//
// This package implements structured audit logging for security-relevant
// operations such as registration, authentication attempts, submission
// deletion and retention sweeps.
//
// # Event Types
//
//   - RegistrationEvent (success/failure)
//   - LoginEvent (success/failure)
//   - DeletionEvent
//   - SweepEvent
//
// # Usage
//
//	audit.Log(audit.LoginEvent{Email: email, ClientIP: ip, Success: true})
//
// Audit events are written in RFC5424 syslog format suitable for security
// monitoring, and optionally persisted to a separate audit database when
// AUDIT_DATABASE_URL is set.
package audit
