package raid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
)

func battler(fp int) domain.BattlerStats {
	return domain.BattlerStats{Health: fp / 4, Attack: fp / 4, Defense: fp / 4, Speed: fp / 4, FocusPower: fp}
}

func TestComputeMaxHP_Scaling(t *testing.T) {
	rankE := progression.RankForLevel(5)
	rankC := progression.RankForLevel(25)
	rankS := progression.RankForLevel(55)

	t.Run("grows with level", func(t *testing.T) {
		assert.Greater(t,
			ComputeMaxHP(rankE, domain.SpecBalanced, 8),
			ComputeMaxHP(rankE, domain.SpecBalanced, 3))
	})

	t.Run("grows with rank", func(t *testing.T) {
		assert.Greater(t,
			ComputeMaxHP(rankC, domain.SpecBalanced, 10),
			ComputeMaxHP(rankE, domain.SpecBalanced, 10))
		assert.Greater(t,
			ComputeMaxHP(rankS, domain.SpecBalanced, 10),
			ComputeMaxHP(rankC, domain.SpecBalanced, 10))
	})

	t.Run("archetype adjusts pool", func(t *testing.T) {
		balanced := ComputeMaxHP(rankE, domain.SpecBalanced, 10)
		assert.Greater(t, ComputeMaxHP(rankE, domain.SpecTank, 10), balanced)
		assert.Less(t, ComputeMaxHP(rankE, domain.SpecGlassCannon, 10), balanced)
	})
}

func TestRollDamage(t *testing.T) {
	userID := uuid.New()
	bossID := uuid.New()
	user := battler(500)
	boss := battler(500)

	t.Run("within variance band of expected", func(t *testing.T) {
		maxHP := 1000
		expected := float64(maxHP) / BaselineAttempts // even match, advantage 1.0

		seq := AttemptSequence(userID, bossID, 0)
		dmg := RollDamage(user, boss, maxHP, maxHP, seq)

		assert.GreaterOrEqual(t, float64(dmg), expected*DamageVarianceMin-1)
		assert.LessOrEqual(t, float64(dmg), expected*DamageVarianceMax+1)
	})

	t.Run("deterministic for identical state", func(t *testing.T) {
		a := RollDamage(user, boss, 1000, 1000, AttemptSequence(userID, bossID, 0))
		b := RollDamage(user, boss, 1000, 1000, AttemptSequence(userID, bossID, 0))
		assert.Equal(t, a, b)
	})

	t.Run("fresh roll once damage accumulates", func(t *testing.T) {
		first := RollDamage(user, boss, 1000, 1000, AttemptSequence(userID, bossID, 0))
		second := RollDamage(user, boss, 1000, 1000-first, AttemptSequence(userID, bossID, first))
		// Different seeds; values may coincide but the streams must not be pinned
		_ = second
		assert.GreaterOrEqual(t, second, MinDamagePerAttempt)
	})

	t.Run("clamped to remaining pool", func(t *testing.T) {
		dmg := RollDamage(user, boss, 1000, 50, AttemptSequence(userID, bossID, 950))
		assert.LessOrEqual(t, dmg, 50)
		assert.GreaterOrEqual(t, dmg, MinDamagePerAttempt)
	})

	t.Run("weak user still makes progress", func(t *testing.T) {
		dmg := RollDamage(battler(1), battler(100000), 1000, 1000, AttemptSequence(userID, bossID, 0))
		assert.GreaterOrEqual(t, dmg, MinDamagePerAttempt)
	})

	t.Run("zero when nothing remains", func(t *testing.T) {
		assert.Zero(t, RollDamage(user, boss, 1000, 0, AttemptSequence(userID, bossID, 1000)))
	})
}

func TestApplyDamage_AccumulationAndClamp(t *testing.T) {
	now := time.Now()
	p := &domain.PortalRaidProgress{ID: uuid.New(), MaxHP: 1000}

	require.NoError(t, ApplyDamage(p, 300, now))
	assert.Equal(t, 300, p.CurrentDamage)
	assert.False(t, p.Completed)

	require.NoError(t, ApplyDamage(p, 300, now))
	assert.Equal(t, 600, p.CurrentDamage)
	assert.InDelta(t, 60.0, p.ProgressPercent(), 0.001)

	// Overkill roll clamps to the pool and completes the encounter
	require.NoError(t, ApplyDamage(p, 500, now))
	assert.Equal(t, 1000, p.CurrentDamage)
	assert.True(t, p.Completed)
	require.NotNil(t, p.CompletedAt)
	assert.InDelta(t, 100.0, p.ProgressPercent(), 0.001)
}

func TestApplyDamage_Rejections(t *testing.T) {
	now := time.Now()

	t.Run("completed row rejects further damage", func(t *testing.T) {
		p := &domain.PortalRaidProgress{MaxHP: 100, CurrentDamage: 100, Completed: true}
		assert.ErrorIs(t, ApplyDamage(p, 10, now), domain.ErrRaidCompleted)
		assert.Equal(t, 100, p.CurrentDamage)
	})

	t.Run("non-positive damage rejected", func(t *testing.T) {
		p := &domain.PortalRaidProgress{MaxHP: 100}
		assert.ErrorIs(t, ApplyDamage(p, 0, now), domain.ErrNonPositiveDamage)
		assert.ErrorIs(t, ApplyDamage(p, -5, now), domain.ErrNonPositiveDamage)
	})
}

func makeBosses() []domain.PortalBoss {
	return []domain.PortalBoss{
		{ID: uuid.New(), Name: "Third", MapOrder: 3},
		{ID: uuid.New(), Name: "First", MapOrder: 1},
		{ID: uuid.New(), Name: "Second", MapOrder: 2},
	}
}

func TestResolveCurrentBoss(t *testing.T) {
	bosses := makeBosses()
	byOrder := map[int]domain.PortalBoss{}
	for _, b := range bosses {
		byOrder[b.MapOrder] = b
	}

	t.Run("first in map order when nothing defeated", func(t *testing.T) {
		got := ResolveCurrentBoss(bosses, nil)
		require.NotNil(t, got)
		assert.Equal(t, "First", got.Name)
	})

	t.Run("skips defeated bosses", func(t *testing.T) {
		got := ResolveCurrentBoss(bosses, map[uuid.UUID]bool{byOrder[1].ID: true})
		require.NotNil(t, got)
		assert.Equal(t, "Second", got.Name)
	})

	t.Run("nil when everything defeated", func(t *testing.T) {
		completed := map[uuid.UUID]bool{}
		for _, b := range bosses {
			completed[b.ID] = true
		}
		assert.Nil(t, ResolveCurrentBoss(bosses, completed))
	})
}

func TestBossStatuses(t *testing.T) {
	bosses := makeBosses()
	byOrder := map[int]domain.PortalBoss{}
	for _, b := range bosses {
		byOrder[b.MapOrder] = b
	}

	progress := map[uuid.UUID]*domain.PortalRaidProgress{
		byOrder[1].ID: {BossID: byOrder[1].ID, MaxHP: 100, CurrentDamage: 100, Completed: true},
		byOrder[2].ID: {BossID: byOrder[2].ID, MaxHP: 200, CurrentDamage: 50},
	}

	entries := BossStatuses(bosses, progress)
	require.Len(t, entries, 3)

	assert.Equal(t, "First", entries[0].Boss.Name)
	assert.Equal(t, domain.BossStatusDefeated, entries[0].Status)
	assert.InDelta(t, 100.0, entries[0].ProgressPercent, 0.001)

	assert.Equal(t, domain.BossStatusCurrent, entries[1].Status)
	assert.InDelta(t, 25.0, entries[1].ProgressPercent, 0.001)

	assert.Equal(t, domain.BossStatusLocked, entries[2].Status)
	assert.Zero(t, entries[2].ProgressPercent)
}

func TestEstimateAttemptsNeeded(t *testing.T) {
	user := battler(500)
	boss := battler(500)

	t.Run("bounds ordered and at least one", func(t *testing.T) {
		min, max := EstimateAttemptsNeeded(user, boss, 1000, 1000)
		assert.GreaterOrEqual(t, min, 1)
		assert.GreaterOrEqual(t, max, min)
	})

	t.Run("tiny remainder still costs an attempt", func(t *testing.T) {
		min, max := EstimateAttemptsNeeded(user, boss, 1000, 1)
		assert.Equal(t, 1, min)
		assert.Equal(t, 1, max)
	})

	t.Run("stronger user needs fewer attempts", func(t *testing.T) {
		_, weakMax := EstimateAttemptsNeeded(battler(250), boss, 1000, 1000)
		_, strongMax := EstimateAttemptsNeeded(battler(1000), boss, 1000, 1000)
		assert.Less(t, strongMax, weakMax)
	})

	t.Run("zero remaining means zero attempts", func(t *testing.T) {
		min, max := EstimateAttemptsNeeded(user, boss, 1000, 0)
		assert.Zero(t, min)
		assert.Zero(t, max)
	})
}

func TestCalculateBossRewards_Monotonic(t *testing.T) {
	rankE := progression.RankForLevel(5)
	rankD := progression.RankForLevel(15)

	xpLow, goldLow := CalculateBossRewards(rankE, 5)
	xpHigh, goldHigh := CalculateBossRewards(rankE, 9)
	assert.Greater(t, xpHigh, xpLow)
	assert.Greater(t, goldHigh, goldLow)

	xpRank, goldRank := CalculateBossRewards(rankD, 5)
	assert.Greater(t, xpRank, xpLow)
	assert.Greater(t, goldRank, goldLow)
}
