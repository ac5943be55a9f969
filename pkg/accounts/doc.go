// Package accounts implements the registration and authentication flows.
//
// Registration validates raw form input (required fields, minimum age,
// password policy), derives a salted bcrypt hash at cost factor 10 and
// persists the record through a store.UsersStore. Authentication looks a
// user up by email and verifies the submitted password with bcrypt's
// constant-time comparison; plaintext is never stored or compared directly.
//
// Two policies the storage layer deliberately does not enforce are exposed
// here as explicit toggles:
//
//   - unique-email enforcement at registration time
//   - signed JWT issuance on successful login
//
// Both default to off, matching the permissive behavior of the storage
// schema. Hashing is CPU-bound on purpose; callers run each flow on their
// own request goroutine so slow comparisons never stall unrelated requests.
package accounts
