package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenmore/focusquest/internal/domain"
)

func statsWithPower(power int) domain.BattlerStats {
	return domain.BattlerStats{
		Health: 100, Attack: 50, Defense: 50, Speed: 50,
		Level: 5, FocusPower: power,
	}
}

func TestDetermineDifficulty(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name     string
		userFP   int
		oppFP    int
		expected domain.DifficultyTier
	}{
		{"much weaker opponent", 1000, 600, domain.DifficultyEasy},
		{"easy boundary", 1000, 750, domain.DifficultyEasy},
		{"just above easy", 1000, 751, domain.DifficultyFair},
		{"slightly weaker opponent", 1500, 1400, domain.DifficultyFair},
		{"even match", 1000, 1000, domain.DifficultyFair},
		{"fair boundary", 1000, 1250, domain.DifficultyFair},
		{"stronger opponent", 1000, 1600, domain.DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.DetermineDifficulty(statsWithPower(tt.userFP), statsWithPower(tt.oppFP))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWinProbabilityBounds(t *testing.T) {
	r := NewResolver()

	// The widest gaps push the logistic tail below float64 resolution;
	// the clamp must still keep the outcome uncertain.
	extremes := []struct{ user, opp int }{
		{1, 100000}, {100000, 1}, {500, 500}, {1, 1},
		{4_000_000, 1}, {1, 4_000_000},
	}
	for _, e := range extremes {
		p := r.WinProbability(statsWithPower(e.user), statsWithPower(e.opp))
		assert.Greater(t, p, 0.0, "user=%d opp=%d", e.user, e.opp)
		assert.Less(t, p, 1.0, "user=%d opp=%d", e.user, e.opp)
		assert.GreaterOrEqual(t, p, WinProbabilityMin, "user=%d opp=%d", e.user, e.opp)
		assert.LessOrEqual(t, p, WinProbabilityMax, "user=%d opp=%d", e.user, e.opp)
	}
}

func TestWinProbabilityMonotonic(t *testing.T) {
	r := NewResolver()
	opp := statsWithPower(1000)

	prev := 0.0
	for power := 100; power <= 5000; power += 100 {
		p := r.WinProbability(statsWithPower(power), opp)
		assert.Greater(t, p, prev, "probability must rise with user power (power=%d)", power)
		prev = p
	}
}

func TestWinProbabilityFavorsStronger(t *testing.T) {
	r := NewResolver()

	// the documented scenario: 1500 vs 1400 is fair and favored
	user := statsWithPower(1500)
	opp := statsWithPower(1400)
	assert.Equal(t, domain.DifficultyFair, r.DetermineDifficulty(user, opp))
	assert.Greater(t, r.WinProbability(user, opp), 0.5)

	// even match is a coin flip
	assert.InDelta(t, 0.5, r.WinProbability(statsWithPower(800), statsWithPower(800)), 1e-9)
}

func TestSimulateBattleDeterministic(t *testing.T) {
	r := NewResolver()
	user := statsWithPower(1500)
	opp := statsWithPower(1400)

	w1, t1, p1 := r.SimulateBattle(user, opp, BattleSequence(user, opp, "grim-warden"))
	w2, t2, p2 := r.SimulateBattle(user, opp, BattleSequence(user, opp, "grim-warden"))

	assert.Equal(t, w1, w2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, p1, p2)
}

func TestSimulateBattlePerformanceRange(t *testing.T) {
	r := NewResolver()
	user := statsWithPower(1200)
	opp := statsWithPower(1100)

	for i := 0; i < 50; i++ {
		seq := BattleSequence(user, opp, "opp-"+string(rune('a'+i)))
		_, _, perf := r.SimulateBattle(user, opp, seq)
		assert.GreaterOrEqual(t, perf, 0.0)
		assert.LessOrEqual(t, perf, 1.0)
	}
}

func TestCalculateRewardsMonotonicity(t *testing.T) {
	r := NewResolver()
	const perf = 0.5

	winEasyXP, _ := r.CalculateRewards(true, domain.DifficultyEasy, perf, nil)
	winFairXP, _ := r.CalculateRewards(true, domain.DifficultyFair, perf, nil)
	winHardXP, _ := r.CalculateRewards(true, domain.DifficultyHard, perf, nil)

	assert.Greater(t, winFairXP, winEasyXP, "fair win must beat easy win")
	assert.Greater(t, winHardXP, winFairXP, "hard win must beat fair win")

	for _, tier := range []domain.DifficultyTier{domain.DifficultyEasy, domain.DifficultyFair, domain.DifficultyHard} {
		winXP, winGold := r.CalculateRewards(true, tier, perf, nil)
		lossXP, lossGold := r.CalculateRewards(false, tier, perf, nil)
		assert.Greater(t, winXP, lossXP, "tier %s", tier)
		assert.GreaterOrEqual(t, winGold, lossGold, "tier %s", tier)
		assert.GreaterOrEqual(t, lossXP, 1, "losses still grant some xp")
	}
}

func TestCalculateRewardsCrossTierSpacing(t *testing.T) {
	r := NewResolver()

	// best-performing easy win must still pay less than worst fair win
	easyBestXP, _ := r.CalculateRewards(true, domain.DifficultyEasy, 1.0, nil)
	fairWorstXP, _ := r.CalculateRewards(true, domain.DifficultyFair, 0.0, nil)
	assert.Greater(t, fairWorstXP, easyBestXP)

	fairBestXP, _ := r.CalculateRewards(true, domain.DifficultyFair, 1.0, nil)
	hardWorstXP, _ := r.CalculateRewards(true, domain.DifficultyHard, 0.0, nil)
	assert.Greater(t, hardWorstXP, fairBestXP)
}

func TestCalculateRewardsExactGoldOverride(t *testing.T) {
	r := NewResolver()

	exact := 33
	_, gold := r.CalculateRewards(true, domain.DifficultyHard, 0.9, &exact)
	assert.Equal(t, exact, gold, "promised gold must be honored exactly")
}

func TestCalculateExactGold(t *testing.T) {
	r := NewResolver()

	t.Run("stable per opponent and tier", func(t *testing.T) {
		g1 := r.CalculateExactGold("iron-maw", domain.DifficultyFair)
		g2 := r.CalculateExactGold("iron-maw", domain.DifficultyFair)
		assert.Equal(t, g1, g2)
	})

	t.Run("within tier band", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			key := "opp-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
			easy := r.CalculateExactGold(key, domain.DifficultyEasy)
			hard := r.CalculateExactGold(key, domain.DifficultyHard)
			assert.GreaterOrEqual(t, easy, ExactGoldEasyMin)
			assert.LessOrEqual(t, easy, ExactGoldEasyMax)
			assert.GreaterOrEqual(t, hard, ExactGoldHardMin)
			assert.LessOrEqual(t, hard, ExactGoldHardMax)
		}
	})
}

func TestExecuteBattle(t *testing.T) {
	r := NewResolver()
	user := statsWithPower(1500)
	opp := statsWithPower(1400)
	exact := r.CalculateExactGold("grim-warden", domain.DifficultyFair)

	res1 := r.ExecuteBattle(user, opp, "grim-warden", &exact)
	res2 := r.ExecuteBattle(user, opp, "grim-warden", &exact)

	require.Equal(t, res1, res2, "same inputs must replay identically")
	assert.Equal(t, domain.DifficultyFair, res1.Tier)
	assert.GreaterOrEqual(t, res1.XPEarned, 1)
	if res1.DidWin {
		assert.Equal(t, exact, res1.GoldEarned)
	}
}
