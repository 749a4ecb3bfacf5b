// Package progression maps lifetime accumulated XP to levels and ranks.
// Every function here is pure: the same total always yields the same
// level, which keeps reward settlement replayable.
package progression

import (
	"math"

	"github.com/avenmore/focusquest/internal/domain"
)

// XPForLevel returns the XP required to advance from level to level+1.
// The requirement grows strictly with level.
func XPForLevel(level int) int64 {
	if level < MinLevel {
		level = MinLevel
	}
	return int64(BaseXP * math.Pow(float64(level), LevelExponent))
}

// TotalXPForLevel returns the cumulative XP threshold at which the given
// level is reached. Level 1 is reached at zero.
func TotalXPForLevel(level int) int64 {
	var total int64
	for l := MinLevel; l < level; l++ {
		total += XPForLevel(l)
	}
	return total
}

// LevelForTotalXP returns the level for a lifetime XP total. Monotonic
// non-decreasing in total; any total >= 0 maps to at least MinLevel.
func LevelForTotalXP(total int64) int {
	if total < 0 {
		return MinLevel
	}
	level := MinLevel
	var threshold int64
	for level < MaxLevel {
		threshold += XPForLevel(level)
		if total < threshold {
			break
		}
		level++
	}
	return level
}

// LevelProgressFor returns the position of a lifetime XP total inside its
// current level. Below the level cap XPInLevel is always strictly below
// XPNeededForNext; at the cap the bar pins full (XPInLevel equals
// XPNeededForNext) no matter how much further the total grows.
func LevelProgressFor(total int64) domain.LevelProgress {
	if total < 0 {
		total = 0
	}
	level := LevelForTotalXP(total)
	inLevel := total - TotalXPForLevel(level)
	needed := XPForLevel(level)
	if level >= MaxLevel {
		// Terminal level: report a full, capped bar without dividing
		// by zero. XP accrued past the cap does not inflate the bar.
		if inLevel > needed {
			inLevel = needed
		}
		return domain.LevelProgress{
			CurrentLevel:    level,
			XPInLevel:       inLevel,
			XPNeededForNext: needed,
			ProgressPercent: 100,
		}
	}
	return domain.LevelProgress{
		CurrentLevel:    level,
		XPInLevel:       inLevel,
		XPNeededForNext: needed,
		ProgressPercent: 100 * float64(inLevel) / float64(needed),
	}
}
