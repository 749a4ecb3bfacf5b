package opponent

import "github.com/avenmore/focusquest/internal/domain"

// RosterSize is the number of opponents generated per request.
const RosterSize = 5

// slotBand defines one roster slot: its difficulty tier and the band of
// the player's focus power the opponent is scaled into.
type slotBand struct {
	Tier     domain.DifficultyTier
	MinScale float64
	MaxScale float64
}

// RosterBands is the fixed difficulty distribution across slots: one
// easy warm-up, three fair matches, one hard stretch target.
var RosterBands = [RosterSize]slotBand{
	{domain.DifficultyEasy, 0.55, 0.65},
	{domain.DifficultyFair, 0.85, 1.15},
	{domain.DifficultyFair, 0.85, 1.15},
	{domain.DifficultyFair, 0.85, 1.15},
	{domain.DifficultyHard, 1.45, 1.65},
}

// Stat budget per level. The archetype weighting redistributes this
// budget but never changes its total.
const (
	BaseStatBudget     = 100
	PerLevelStatBudget = 20
)

// Floors prevent degenerate stats at low levels.
const (
	MinStatValue  = 5
	MinFocusPower = 10
)

// Level offsets per tier relative to the player.
const (
	EasyLevelOffset = -1
	HardLevelOffset = 2
)

// RosterSeedTag namespaces roster draws from other seeded streams.
const RosterSeedTag = "roster"

// archetypeWeights is the stat-point split per specialization over
// health/attack/defense/speed. Each row sums to 1.
var archetypeWeights = map[domain.Specialization][4]float64{
	domain.SpecBalanced:    {0.25, 0.25, 0.25, 0.25},
	domain.SpecTank:        {0.40, 0.15, 0.35, 0.10},
	domain.SpecGlassCannon: {0.15, 0.45, 0.10, 0.30},
	domain.SpecSpeedster:   {0.20, 0.30, 0.10, 0.40},
}
