// Package weather wraps the third-party weather API behind a capability
// interface. Requests carry a bounded timeout so a slow upstream cannot pin
// request-handling goroutines indefinitely.
package weather
