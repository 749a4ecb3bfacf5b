package raid

// ============================================================================
// HP Pool Scaling
// ============================================================================

const (
	// BossBaseHP is the HP floor before level and rank scaling
	BossBaseHP = 400

	// BossHPPerLevel is added to the pool per boss level
	BossHPPerLevel = 120
)

// rankHPMultipliers scales the pool by rank tier.
var rankHPMultipliers = map[string]float64{
	"E": 1.0, "D": 1.25, "C": 1.5, "B": 1.8, "A": 2.2, "S": 2.7, "SS": 3.3,
}

// specHPMultipliers adjusts the pool by boss archetype.
var specHPMultipliers = map[string]float64{
	"tank": 1.3, "balanced": 1.0, "speedster": 0.9, "glass_cannon": 0.8,
}

// ============================================================================
// Damage Model
// ============================================================================

const (
	// BaselineAttempts is how many attempts an evenly matched user is
	// expected to need against a full pool
	BaselineAttempts = 5.0

	// Damage variance band applied to every roll
	DamageVarianceMin = 0.85
	DamageVarianceMax = 1.15

	// Advantage clamps keep extreme power gaps from trivializing or
	// stonewalling an encounter
	AdvantageMin = 0.1
	AdvantageMax = 10.0

	// MinDamagePerAttempt guarantees visible progress on every attempt
	MinDamagePerAttempt = 1
)

// AttemptSeedTag namespaces raid damage draws.
const AttemptSeedTag = "raid_attempt"

// ============================================================================
// Boss Rewards
// ============================================================================

const (
	BossXPBase       = 100
	BossXPPerLevel   = 15
	BossGoldBase     = 60
	BossGoldPerLevel = 10

	// RankRewardStep raises rewards per rank tier above E
	RankRewardStep = 0.5
)

// lockKeyAttempt prefixes per-user attempt serialization locks.
const lockKeyAttempt = "raid_attempt:"

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgGetBossesFailed      = "failed to get bosses: %w"
	ErrMsgGetProgressFailed    = "failed to get raid progress: %w"
	ErrMsgCreateProgressFailed = "failed to create raid progress: %w"
	ErrMsgApplyDamageFailed    = "failed to apply damage: %w"
	ErrMsgSettleRewardsFailed  = "failed to settle boss rewards: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgAttemptExecuted    = "Raid attempt executed"
	LogMsgEventPublishFailed = "Event publish failed"
)
