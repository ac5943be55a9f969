// Package sweep implements the periodic retention sweep: a timer-driven
// task that bulk-deletes user records older than a fixed age threshold.
// Delete-older-than naturally excludes in-flight registrations not yet
// committed, so the sweep is safe to run concurrently with request traffic.
package sweep
