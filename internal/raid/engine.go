// Package raid manages persistent multi-attempt boss encounters: HP
// pool scaling, per-attempt damage, cumulative progress, completion
// detection and boss-sequence navigation. The pure math lives in this
// file; persistence orchestration lives in the service.
package raid

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
	"github.com/avenmore/focusquest/internal/rng"
)

// ComputeMaxHP scales a boss's damage pool by rank, archetype and level.
// Called exactly once, when the progress row is created; the result is
// frozen there so later balance changes never desync accumulated damage.
func ComputeMaxHP(rank domain.Rank, spec domain.Specialization, level int) int {
	if level < 1 {
		level = 1
	}
	base := float64(BossBaseHP + BossHPPerLevel*level)

	rankMult, ok := rankHPMultipliers[rank.Code]
	if !ok {
		rankMult = 1.0
	}
	specMult, ok := specHPMultipliers[spec.String()]
	if !ok {
		specMult = 1.0
	}
	return int(math.Round(base * rankMult * specMult))
}

// AttemptSequence builds the draw stream for one attempt. Seeding on the
// accumulated damage makes each real attempt roll fresh while replays of
// the same progress state stay reproducible.
func AttemptSequence(userID, bossID uuid.UUID, currentDamage int) *rng.Sequence {
	return rng.NewFrom(AttemptSeedTag, userID.String(), bossID.String(), currentDamage)
}

// advantage is the clamped user/boss power ratio driving expected damage.
func advantage(user, boss domain.BattlerStats) float64 {
	up := user.FocusPower
	if up <= 0 {
		up = 1
	}
	bp := boss.FocusPower
	if bp <= 0 {
		bp = 1
	}
	adv := float64(up) / float64(bp)
	if adv < AdvantageMin {
		return AdvantageMin
	}
	if adv > AdvantageMax {
		return AdvantageMax
	}
	return adv
}

// expectedDamage is the mean per-attempt damage before variance.
func expectedDamage(user, boss domain.BattlerStats, maxHP int) float64 {
	return float64(maxHP) / BaselineAttempts * advantage(user, boss)
}

// RollDamage draws one attempt's damage: expected damage under the
// variance band, floored so progress is always visible and clamped so
// the pool is never overshot.
func RollDamage(user, boss domain.BattlerStats, maxHP, remaining int, seq *rng.Sequence) int {
	if remaining <= 0 {
		return 0
	}
	rolled := int(math.Round(expectedDamage(user, boss, maxHP) * seq.Float(DamageVarianceMin, DamageVarianceMax)))
	if rolled < MinDamagePerAttempt {
		rolled = MinDamagePerAttempt
	}
	if rolled > remaining {
		rolled = remaining
	}
	return rolled
}

// ApplyDamage mutates a progress row in place: damage only ever grows,
// completion is reached exactly when the pool is depleted, and a
// completed row rejects further damage instead of double counting.
func ApplyDamage(p *domain.PortalRaidProgress, damage int, now time.Time) error {
	if p.Completed {
		return domain.ErrRaidCompleted
	}
	if damage <= 0 {
		return domain.ErrNonPositiveDamage
	}

	p.CurrentDamage += damage
	if p.CurrentDamage >= p.MaxHP {
		p.CurrentDamage = p.MaxHP
		p.Completed = true
		p.CompletedAt = &now
	}
	p.UpdatedAt = now
	return nil
}

// ResolveCurrentBoss returns the first boss in map order not yet in the
// completed set, or nil when every boss is defeated. At most one boss is
// ever current.
func ResolveCurrentBoss(bosses []domain.PortalBoss, completed map[uuid.UUID]bool) *domain.PortalBoss {
	ordered := sortedByMapOrder(bosses)
	for i := range ordered {
		if !completed[ordered[i].ID] {
			return &ordered[i]
		}
	}
	return nil
}

// BossStatuses categorizes the full sequence for display: defeated
// bosses, the single current one, and everything after it locked.
func BossStatuses(bosses []domain.PortalBoss, progress map[uuid.UUID]*domain.PortalRaidProgress) []domain.BossListEntry {
	ordered := sortedByMapOrder(bosses)

	entries := make([]domain.BossListEntry, 0, len(ordered))
	currentSeen := false
	for _, b := range ordered {
		entry := domain.BossListEntry{Boss: b}
		if p := progress[b.ID]; p != nil {
			entry.ProgressPercent = p.ProgressPercent()
		}

		switch {
		case progress[b.ID] != nil && progress[b.ID].Completed:
			entry.Status = domain.BossStatusDefeated
		case !currentSeen:
			entry.Status = domain.BossStatusCurrent
			currentSeen = true
		default:
			entry.Status = domain.BossStatusLocked
		}
		entries = append(entries, entry)
	}
	return entries
}

// EstimateAttemptsNeeded projects best and worst case attempts to clear
// the remaining pool from the variance band. Purely advisory; both
// bounds are at least 1 while anything remains.
func EstimateAttemptsNeeded(user, boss domain.BattlerStats, maxHP, remaining int) (min, max int) {
	if remaining <= 0 {
		return 0, 0
	}
	expected := expectedDamage(user, boss, maxHP)

	best := expected * DamageVarianceMax
	worst := expected * DamageVarianceMin
	if worst < MinDamagePerAttempt {
		worst = MinDamagePerAttempt
	}
	if best < MinDamagePerAttempt {
		best = MinDamagePerAttempt
	}

	min = int(math.Ceil(float64(remaining) / best))
	max = int(math.Ceil(float64(remaining) / worst))
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min, max
}

// CalculateBossRewards returns the XP and gold granted for defeating a
// boss. Strictly increasing in both rank tier and level.
func CalculateBossRewards(rank domain.Rank, level int) (xp, gold int) {
	if level < 1 {
		level = 1
	}
	idx := progression.RankIndex(rank.Code)
	if idx < 0 {
		idx = 0
	}
	mult := 1 + RankRewardStep*float64(idx)

	xp = int(math.Round(float64(BossXPBase+BossXPPerLevel*level) * mult))
	gold = int(math.Round(float64(BossGoldBase+BossGoldPerLevel*level) * mult))
	return xp, gold
}

func sortedByMapOrder(bosses []domain.PortalBoss) []domain.PortalBoss {
	ordered := make([]domain.PortalBoss, len(bosses))
	copy(ordered, bosses)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].MapOrder < ordered[j].MapOrder })
	return ordered
}
