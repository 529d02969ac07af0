package backend

import "time"

const (
	// DefaultTimeout is the fixed ceiling for every backend request. There is
	// no retry: a request that hits it fails once and surfaces to the caller.
	DefaultTimeout = 10 * time.Second
)
