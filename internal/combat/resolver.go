// Package combat resolves single duels between two stat blocks:
// difficulty bucketing, win probability, outcome simulation and reward
// calculation. Everything here is pure; outcomes are drawn from an
// injected seeded sequence so resolved battles replay identically.
package combat

import (
	"math"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/rng"
)

// Resolver computes duel outcomes. It holds no mutable state and is safe
// for concurrent use.
type Resolver struct{}

// NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// powerRatio returns opponent power relative to the user. A ratio above 1
// means the opponent is stronger. Non-positive focus power is clamped to
// 1 so the math stays total; invalid stats are rejected at the boundary.
func powerRatio(user, opponent domain.BattlerStats) float64 {
	up := user.FocusPower
	if up <= 0 {
		up = 1
	}
	op := opponent.FocusPower
	if op <= 0 {
		op = 1
	}
	return float64(op) / float64(up)
}

// DetermineDifficulty buckets the power balance between two combatants.
func (r *Resolver) DetermineDifficulty(user, opponent domain.BattlerStats) domain.DifficultyTier {
	ratio := powerRatio(user, opponent)
	switch {
	case ratio <= EasyMaxRatio:
		return domain.DifficultyEasy
	case ratio <= FairMaxRatio:
		return domain.DifficultyFair
	default:
		return domain.DifficultyHard
	}
}

// WinProbability returns the user's chance to win, strictly between 0
// and 1 for any valid stats. The logistic shape saturates smoothly, and
// the clamp keeps extreme mismatches from rounding to a guaranteed
// outcome; there is no auto-win or auto-lose cliff.
func (r *Resolver) WinProbability(user, opponent domain.BattlerStats) float64 {
	ratio := powerRatio(user, opponent)
	p := 1 / (1 + math.Pow(ratio, ProbabilitySteepness))
	switch {
	case p < WinProbabilityMin:
		return WinProbabilityMin
	case p > WinProbabilityMax:
		return WinProbabilityMax
	default:
		return p
	}
}

// BattleSequence builds the deterministic draw stream for one battle.
// Seeding from the stat blocks plus the opponent key means replaying an
// already-resolved battle reproduces its outcome, while a different
// opponent or changed player state rolls fresh.
func BattleSequence(user, opponent domain.BattlerStats, opponentKey string) *rng.Sequence {
	return rng.NewFrom(
		BattleSeedTag,
		opponentKey,
		user.Level, user.FocusPower, user.Health, user.Attack, user.Defense, user.Speed,
		opponent.Level, opponent.FocusPower, opponent.Health, opponent.Attack, opponent.Defense, opponent.Speed,
	)
}

// SimulateBattle rolls one outcome from the given sequence. Performance
// measures how decisively the outcome landed relative to the odds and is
// consumed by reward scaling.
func (r *Resolver) SimulateBattle(user, opponent domain.BattlerStats, seq *rng.Sequence) (didWin bool, tier domain.DifficultyTier, performance float64) {
	tier = r.DetermineDifficulty(user, opponent)
	p := r.WinProbability(user, opponent)
	roll := seq.Float01()

	didWin = roll < p
	if didWin {
		performance = (p - roll) / p
	} else {
		performance = (roll - p) / (1 - p)
	}
	return didWin, tier, performance
}

// CalculateExactGold returns the pre-committed gold reward for an
// opponent. It depends only on the stable opponent key and tier, never
// on battle rolls, so the number shown before the fight cannot drift.
func (r *Resolver) CalculateExactGold(opponentKey string, tier domain.DifficultyTier) int {
	seq := rng.NewFrom(ExactGoldSeedTag, opponentKey, int(tier))
	switch tier {
	case domain.DifficultyEasy:
		return seq.IntRange(ExactGoldEasyMin, ExactGoldEasyMax)
	case domain.DifficultyFair:
		return seq.IntRange(ExactGoldFairMin, ExactGoldFairMax)
	default:
		return seq.IntRange(ExactGoldHardMin, ExactGoldHardMax)
	}
}

// CalculateRewards computes XP and gold for an outcome. Wins always beat
// losses at the same tier, and higher tiers always beat lower tiers for
// the same outcome. A supplied exactGold overrides the computed gold so
// the amount promised to the player before the fight holds.
func (r *Resolver) CalculateRewards(didWin bool, tier domain.DifficultyTier, performance float64, exactGold *int) (xp, gold int) {
	baseXP, baseGold := winRewardBase(tier)

	factor := PerformanceFloor + PerformanceSpan*clamp01(performance)
	xp = int(math.Round(float64(baseXP) * factor))
	gold = int(math.Round(float64(baseGold) * factor))

	if !didWin {
		xp = int(math.Round(float64(xp) * LossXPFactor))
		gold = int(math.Round(float64(gold) * LossGoldFactor))
	}
	if xp < 1 {
		xp = 1
	}
	if gold < 0 {
		gold = 0
	}

	if didWin && exactGold != nil {
		gold = *exactGold
	}
	return xp, gold
}

// ExecuteBattle composes simulation and reward calculation into one
// ephemeral result. No persistence happens here; the caller settles the
// returned value through the reward ledger.
func (r *Resolver) ExecuteBattle(user, opponent domain.BattlerStats, opponentKey string, exactGold *int) domain.BattleResult {
	seq := BattleSequence(user, opponent, opponentKey)
	didWin, tier, performance := r.SimulateBattle(user, opponent, seq)
	xp, gold := r.CalculateRewards(didWin, tier, performance, exactGold)

	return domain.BattleResult{
		DidWin:      didWin,
		XPEarned:    xp,
		GoldEarned:  gold,
		Tier:        tier,
		Performance: performance,
	}
}

func winRewardBase(tier domain.DifficultyTier) (xp, gold int) {
	switch tier {
	case domain.DifficultyEasy:
		return WinXPEasy, WinGoldEasy
	case domain.DifficultyFair:
		return WinXPFair, WinGoldFair
	default:
		return WinXPHard, WinGoldHard
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
