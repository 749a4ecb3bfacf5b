// Package reward converts battle and raid outcomes into persisted-state
// deltas: XP and gold grants, stat points, and one-shot level-up and
// rank-up transitions. The ledger never touches persistence itself; it
// returns a plain value for the repository layer to apply atomically.
package reward

import (
	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
)

// StatPointsPerLevel is granted for every level gained in a settlement.
const StatPointsPerLevel = 5

// LevelUpEvent marks a level transition inside one settlement.
type LevelUpEvent struct {
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}

// Delta is the finalized settlement of one outcome against a user's
// prior totals. Events are populated at most once per transition; a
// second read of the same prior state recomputes, it never re-fires.
type Delta struct {
	XPDelta      int64                   `json:"xp_delta"`
	GoldDelta    int64                   `json:"gold_delta"`
	StatPoints   int                     `json:"stat_points"`
	LevelsGained int                     `json:"levels_gained"`
	LevelUp      *LevelUpEvent           `json:"level_up,omitempty"`
	RankUp       *progression.RankChange `json:"rank_up,omitempty"`
}

// Ledger settles outcomes. Stateless; transition detection derives
// entirely from the prior XP total passed in.
type Ledger struct{}

// NewLedger creates a new Ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// SettleBattle finalizes a duel outcome against the user's lifetime XP
// total as it stood before the battle.
func (l *Ledger) SettleBattle(prevTotalXP int64, result domain.BattleResult) Delta {
	return l.settle(prevTotalXP, result.XPEarned, result.GoldEarned)
}

// SettleRaidAttempt finalizes a raid attempt. Attempts that do not
// defeat the boss carry no reward, so the delta is zero-valued.
func (l *Ledger) SettleRaidAttempt(prevTotalXP int64, result domain.RaidAttemptResult) Delta {
	if !result.BossDefeated {
		return Delta{}
	}
	return l.settle(prevTotalXP, result.XPEarned, result.GoldEarned)
}

func (l *Ledger) settle(prevTotalXP int64, xp, gold int) Delta {
	oldLevel := progression.LevelForTotalXP(prevTotalXP)
	newLevel := progression.LevelForTotalXP(prevTotalXP + int64(xp))

	d := Delta{
		XPDelta:   int64(xp),
		GoldDelta: int64(gold),
	}
	if newLevel > oldLevel {
		d.LevelsGained = newLevel - oldLevel
		d.StatPoints = StatPointsPerLevel * d.LevelsGained
		d.LevelUp = &LevelUpEvent{OldLevel: oldLevel, NewLevel: newLevel}
		d.RankUp = progression.RankUp(oldLevel, newLevel)
	}
	return d
}
