package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Battle error messages
	ErrMsgGetOpponentsFailed = "Failed to get opponents"
	ErrMsgBattleFailed       = "Failed to resolve battle"

	// Raid error messages
	ErrMsgGetBossesFailed     = "Failed to get bosses"
	ErrMsgRaidAttemptFailed   = "Failed to execute raid attempt"
	ErrMsgGetRaidStatusFailed = "Failed to get raid status"

	// Progress error messages
	ErrMsgGetProgressFailed = "Failed to get progress"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgProgressNotFoundError  = "User has no progression record"
	ErrMsgOpponentNotFoundError  = "Opponent is not in your current roster. Refresh and try again"
	ErrMsgBossNotFoundError      = "Boss not found"
	ErrMsgRaidCompletedError     = "This boss is already defeated"
	ErrMsgAllBossesDefeatedError = "All bosses are defeated. Well fought"
	ErrMsgNoAttemptsRemainingErr = "No boss attempts remaining today. Come back tomorrow"
	ErrMsgConcurrentAttemptError = "Another attempt just landed. Refresh and try again"
	ErrMsgInvalidStatsError      = "Invalid battler stats"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)
