// Package cache provides the read-through cache in front of the submissions
// listing.
//
// A single named key holds a serialized snapshot of the user collection with
// a fixed TTL. Reads return an explicit hit-or-miss Result rather than
// invoking callbacks; expiry is enforced by the Redis backend, so an expired
// entry is simply absent. On a miss the caller recomputes from the users
// store and repopulates with Put. There is no single-flight protection:
// concurrent misses may recompute redundantly, and the later Put wins.
//
// A backend connectivity failure surfaces as ErrUnavailable. Callers treat
// it exactly like a miss and fall back to direct computation; it must never
// abort a listing request.
package cache
