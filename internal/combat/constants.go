package combat

// ============================================================================
// Difficulty Thresholds
// ============================================================================

// Difficulty is bucketed on the opponent/user focus-power ratio.
// The thresholds partition the ratio axis with no gaps or overlaps.
const (
	// EasyMaxRatio is the upper bound of the easy bucket (inclusive)
	EasyMaxRatio = 0.75

	// FairMaxRatio is the upper bound of the fair bucket (inclusive);
	// anything above is hard
	FairMaxRatio = 1.25
)

// ============================================================================
// Win Probability
// ============================================================================

// ProbabilitySteepness is the exponent of the logistic win-probability
// curve over the power ratio. Higher values make power gaps more decisive.
const ProbabilitySteepness = 3.0

// Win probability is clamped into an open interval so no stat gap ever
// produces a guaranteed outcome. At extreme ratios the logistic curve
// rounds to exactly 0 or 1 in float64; the clamp keeps the tails alive.
const (
	WinProbabilityMin = 0.001
	WinProbabilityMax = 0.999
)

// ============================================================================
// Reward Tables
// ============================================================================

// Base XP for a win, per difficulty tier
const (
	WinXPEasy = 20
	WinXPFair = 40
	WinXPHard = 70
)

// Base gold for a win, per difficulty tier
const (
	WinGoldEasy = 15
	WinGoldFair = 30
	WinGoldHard = 55
)

// Loss rewards are a fraction of the win table for the same tier
const (
	LossXPFactor   = 0.25
	LossGoldFactor = 0.2
)

// Performance scales rewards inside a band around the base value.
// factor = PerformanceFloor + PerformanceSpan * performance
const (
	PerformanceFloor = 0.75
	PerformanceSpan  = 0.5
)

// Exact-gold bands per difficulty tier, drawn deterministically from the
// opponent key so the promised amount never changes on re-query
const (
	ExactGoldEasyMin = 10
	ExactGoldEasyMax = 20
	ExactGoldFairMin = 25
	ExactGoldFairMax = 40
	ExactGoldHardMin = 45
	ExactGoldHardMax = 70
)

// ExactGoldSeedTag namespaces exact-gold draws from battle-outcome draws.
const ExactGoldSeedTag = "exact_gold"

// BattleSeedTag namespaces battle-outcome draws.
const BattleSeedTag = "battle"
