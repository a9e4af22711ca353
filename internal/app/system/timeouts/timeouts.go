// internal/app/system/timeouts/timeouts.go

// Package timeouts centralizes the context deadlines handlers put on
// database work.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-row reads and lookups
//   - Medium: list queries, simple writes
//   - Long: multi-statement writes and aggregate queries
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-row reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for aggregate queries and multi-step writes.
func Long() time.Duration { return long }
