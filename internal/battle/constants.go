package battle

// Metric outcome label values
const (
	outcomeWin  = "win"
	outcomeLoss = "loss"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgSettleRewardsFailed = "failed to settle battle rewards: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgBattleResolved     = "Battle resolved"
	LogMsgEventPublishFailed = "Event publish failed"
)
