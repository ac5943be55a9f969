// Package oauth wraps the external OAuth strategy behind a capability
// interface: redirect the user to the provider, then exchange the returned
// authorization code for an external profile. The handshake itself is
// entirely the provider's; no local accounts are created or linked.
package oauth
