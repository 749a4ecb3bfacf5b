package worker

import "time"

// Cleanup worker defaults
const (
	// DefaultCleanupInterval is how often stale attempt rows are swept
	DefaultCleanupInterval = 6 * time.Hour

	// DefaultLimitsRetention is how long daily attempt rows are kept
	// after their day has passed
	DefaultLimitsRetention = 30 * 24 * time.Hour

	cleanupQueryTimeout = 30 * time.Second
)

// SQLDeleteStaleLimits removes attempt counters past the retention window
const SQLDeleteStaleLimits = `DELETE FROM daily_limits WHERE day < $1`

// Log messages for cleanup worker operations
const (
	LogMsgCleanupWorkerStarting = "Starting cleanup worker"
	LogMsgCleanupWorkerStopping = "Cleanup worker shutdown signal received"
	LogMsgCleanupSweepFailed    = "Cleanup sweep failed"
	LogMsgCleanupSweepCompleted = "Cleanup sweep completed"
)
