package database

import "time"

// Pool sizing defaults. The whole app reads and writes one row, so
// the pool stays small; cmd binaries use these unless overridden.
const (
	DefaultMaxConns    = 10
	DefaultMinConns    = 2
	DefaultMaxIdleTime = 30 * time.Minute
	DefaultMaxLifetime = time.Hour
)
