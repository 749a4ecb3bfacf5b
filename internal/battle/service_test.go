package battle

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenmore/focusquest/internal/combat"
	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/event"
	"github.com/avenmore/focusquest/internal/opponent"
	"github.com/avenmore/focusquest/internal/progression"
	"github.com/avenmore/focusquest/internal/reward"
)

type mockUserRepo struct {
	progress domain.UserProgress
}

func (m *mockUserRepo) GetUserByID(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	return &domain.User{ID: userID, Username: "tester"}, nil
}

func (m *mockUserRepo) GetUserByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) GetProgress(_ context.Context, _ uuid.UUID) (*domain.UserProgress, error) {
	cp := m.progress
	return &cp, nil
}

func (m *mockUserRepo) ApplyRewardDelta(_ context.Context, _ uuid.UUID, xpDelta, goldDelta int64, statPoints int) (*domain.UserProgress, error) {
	m.progress.TotalXP += xpDelta
	m.progress.Gold += goldDelta
	m.progress.StatPoints += statPoints
	cp := m.progress
	return &cp, nil
}

func battler(fp int) domain.BattlerStats {
	return domain.BattlerStats{Health: fp / 4, Attack: fp / 4, Defense: fp / 4, Speed: fp / 4, FocusPower: fp}
}

func newService(users *mockUserRepo) Service {
	resolver := combat.NewResolver()
	return NewService(users, resolver, opponent.NewGenerator(resolver), reward.NewLedger(), event.NewMemoryBus())
}

func TestGetOpponents_StableUntilStandingChanges(t *testing.T) {
	users := &mockUserRepo{progress: domain.UserProgress{TotalXP: progression.TotalXPForLevel(10)}}
	svc := newService(users)
	userID := uuid.New()

	first, err := svc.GetOpponents(context.Background(), userID, battler(400))
	require.NoError(t, err)
	require.Len(t, first, opponent.RosterSize)

	second, err := svc.GetOpponents(context.Background(), userID, battler(400))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Level changed, roster reshuffles
	users.progress.TotalXP = progression.TotalXPForLevel(11)
	third, err := svc.GetOpponents(context.Background(), userID, battler(400))
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestBattle_SettlesRewardsAndPublishes(t *testing.T) {
	users := &mockUserRepo{progress: domain.UserProgress{TotalXP: progression.TotalXPForLevel(10)}}
	svc := newService(users)
	userID := uuid.New()

	roster, err := svc.GetOpponents(context.Background(), userID, battler(400))
	require.NoError(t, err)

	outcome, err := svc.Battle(context.Background(), userID, battler(400), roster[0].ID)
	require.NoError(t, err)

	assert.Equal(t, roster[0].ID, outcome.Opponent.ID)
	assert.Greater(t, outcome.Result.XPEarned, 0, "losses still earn consolation XP")
	assert.Equal(t, outcome.Delta.XPDelta, int64(outcome.Result.XPEarned))
	require.NotNil(t, outcome.Snapshot)
	assert.Equal(t, users.progress.TotalXP, outcome.Snapshot.TotalXP)
}

func TestBattle_DeterministicReplay(t *testing.T) {
	userID := uuid.New()

	run := func() *Outcome {
		users := &mockUserRepo{progress: domain.UserProgress{TotalXP: progression.TotalXPForLevel(10)}}
		svc := newService(users)
		roster, err := svc.GetOpponents(context.Background(), userID, battler(400))
		require.NoError(t, err)
		outcome, err := svc.Battle(context.Background(), userID, battler(400), roster[2].ID)
		require.NoError(t, err)
		return outcome
	}

	a := run()
	b := run()
	assert.Equal(t, a.Result, b.Result)
	assert.Equal(t, a.Delta, b.Delta)
}

func TestBattle_UnknownOpponentRejected(t *testing.T) {
	users := &mockUserRepo{progress: domain.UserProgress{TotalXP: progression.TotalXPForLevel(10)}}
	svc := newService(users)

	_, err := svc.Battle(context.Background(), uuid.New(), battler(400), "no-such-opponent-10-0")
	assert.ErrorIs(t, err, domain.ErrOpponentNotFound)
}

func TestBattle_StaleRosterIDRejectedAfterLevelUp(t *testing.T) {
	users := &mockUserRepo{progress: domain.UserProgress{TotalXP: progression.TotalXPForLevel(10)}}
	svc := newService(users)
	userID := uuid.New()

	roster, err := svc.GetOpponents(context.Background(), userID, battler(400))
	require.NoError(t, err)

	users.progress.TotalXP = progression.TotalXPForLevel(20)

	_, err = svc.Battle(context.Background(), userID, battler(400), roster[0].ID)
	assert.ErrorIs(t, err, domain.ErrOpponentNotFound)
}
