package stats

import "time"

// Stats cache sizing. Reads vastly outnumber writes; awards write through so
// a cached read is never older than the last award this instance made.
const (
	CacheSize = 1024
	CacheTTL  = 30 * time.Second
)

// Error message constants
const (
	ErrMsgUserIDRequired = "user ID is required"
)

// Log message constants
const (
	LogMsgXPAwarded     = "quest XP awarded"
	LogMsgFailedToAward = "failed to award quest XP"
)
