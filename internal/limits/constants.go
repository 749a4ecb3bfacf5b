package limits

// ============================================================================
// Daily Allowances
// ============================================================================

const (
	// FreeDailyAttempts is the boss attempt cap for free tier users
	FreeDailyAttempts = 1

	// PaidDailyAttempts is the boss attempt cap for paid tier users
	PaidDailyAttempts = 3
)

// LockSeedTag namespaces advisory lock keys for attempt consumption.
const LockSeedTag = "daily_limit"

// ============================================================================
// SQL Queries
// ============================================================================

const (
	SQLAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	SQLSelectAttemptsUsed = `
		SELECT boss_attempts_used
		FROM daily_limits
		WHERE user_id = $1 AND day = $2`

	SQLIncrementAttempts = `
		INSERT INTO daily_limits (user_id, day, boss_attempts_used)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, day)
		DO UPDATE SET boss_attempts_used = daily_limits.boss_attempts_used + 1`
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgGetTierFailed           = "failed to resolve subscription tier: %w"
	ErrMsgGetAttemptsFailed       = "failed to get attempts used: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgIncrementFailed         = "failed to increment attempt counter: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDevModeBypass    = "Dev mode: bypassing daily limit"
	LogMsgAttemptConsumed  = "Daily attempt consumed"
	LogMsgAllowanceReached = "Daily allowance exhausted"
)
