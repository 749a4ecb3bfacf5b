// Package opponent procedurally derives duel rosters scaled to the
// player's current strength. Rosters are ephemeral and reproducible:
// the same player state always yields the same opponents.
package opponent

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/avenmore/focusquest/internal/combat"
	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
	"github.com/avenmore/focusquest/internal/rng"
)

// Generator builds opponent rosters. Stateless and safe for concurrent use.
type Generator struct {
	resolver *combat.Resolver
}

// NewGenerator creates a new Generator
func NewGenerator(resolver *combat.Resolver) *Generator {
	return &Generator{resolver: resolver}
}

// Generate returns the fixed-size roster for a player state. Each slot is
// independently seeded so opponents are statistically distinct, and the
// whole roster changes only when the player's level or power changes.
func (g *Generator) Generate(playerLevel, playerFocusPower int) []domain.Opponent {
	if playerLevel < 1 {
		playerLevel = 1
	}
	if playerFocusPower < MinFocusPower {
		playerFocusPower = MinFocusPower
	}

	playerStats := domain.BattlerStats{Level: playerLevel, FocusPower: playerFocusPower}

	roster := make([]domain.Opponent, 0, RosterSize)
	for slot, band := range RosterBands {
		seq := rng.NewFrom(RosterSeedTag, playerLevel, playerFocusPower, slot)
		roster = append(roster, g.generateOne(playerStats, band, slot, seq))
	}
	return roster
}

func (g *Generator) generateOne(player domain.BattlerStats, band slotBand, slot int, seq *rng.Sequence) domain.Opponent {
	name := displayName(rng.Pick(seq, givenNames), rng.Pick(seq, epithets))
	id := fmt.Sprintf("%s-%d-%d", slugify(name), player.Level, slot)

	level := levelForTier(player.Level, band.Tier)
	spec := SpecializationFor(name)

	scale := seq.Float(band.MinScale, band.MaxScale)
	focusPower := int(math.Round(float64(player.FocusPower) * scale))
	if focusPower < MinFocusPower {
		focusPower = MinFocusPower
	}

	stats := statsFor(level, spec, focusPower)

	successRate := int(math.Round(100 * g.resolver.WinProbability(player, stats)))
	exactGold := g.resolver.CalculateExactGold(id, band.Tier)

	return domain.Opponent{
		ID:             id,
		Name:           name,
		Level:          level,
		Rank:           progression.RankForLevel(level),
		Stats:          stats,
		SuccessRate:    successRate,
		ExactGold:      exactGold,
		Specialization: spec,
		Tier:           band.Tier,
	}
}

// SpecializationFor hashes a stable name into one of the four
// archetypes. Independent of the RNG draws used for numeric stats.
func SpecializationFor(name string) domain.Specialization {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	switch h.Sum32() % 4 {
	case 0:
		return domain.SpecBalanced
	case 1:
		return domain.SpecTank
	case 2:
		return domain.SpecGlassCannon
	default:
		return domain.SpecSpeedster
	}
}

// statsFor splits the fixed per-level stat budget according to the
// archetype weighting. The budget total is independent of archetype.
func statsFor(level int, spec domain.Specialization, focusPower int) domain.BattlerStats {
	budget := BaseStatBudget + PerLevelStatBudget*level
	w := archetypeWeights[spec]

	stats := domain.BattlerStats{
		Health:     statFloor(int(math.Round(float64(budget) * w[0]))),
		Attack:     statFloor(int(math.Round(float64(budget) * w[1]))),
		Defense:    statFloor(int(math.Round(float64(budget) * w[2]))),
		Speed:      statFloor(int(math.Round(float64(budget) * w[3]))),
		Level:      level,
		FocusPower: focusPower,
	}
	return stats
}

func levelForTier(playerLevel int, tier domain.DifficultyTier) int {
	switch tier {
	case domain.DifficultyEasy:
		if playerLevel+EasyLevelOffset < 1 {
			return 1
		}
		return playerLevel + EasyLevelOffset
	case domain.DifficultyHard:
		return playerLevel + HardLevelOffset
	default:
		return playerLevel
	}
}

func statFloor(v int) int {
	if v < MinStatValue {
		return MinStatValue
	}
	return v
}
