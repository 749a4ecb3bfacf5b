package limits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avenmore/focusquest/internal/domain"
)

type stubTierSource struct {
	tier domain.SubscriptionTier
	err  error
}

func (s *stubTierSource) GetTier(_ context.Context, _ uuid.UUID) (domain.SubscriptionTier, error) {
	return s.tier, s.err
}

func TestAllowanceFor(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, FreeDailyAttempts, cfg.AllowanceFor(domain.TierFree))
	assert.Equal(t, PaidDailyAttempts, cfg.AllowanceFor(domain.TierPaid))
	assert.Greater(t, cfg.AllowanceFor(domain.TierPaid), cfg.AllowanceFor(domain.TierFree))
}

func TestDayOf(t *testing.T) {
	lateEvening := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	nextMorning := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)
	sameDayNoon := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, dayOf(lateEvening), dayOf(sameDayNoon))
	assert.NotEqual(t, dayOf(lateEvening), dayOf(nextMorning))
}

func TestConsumeAttempt_FreeTierSecondCallRejected(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{tier: domain.TierFree})
	userID := uuid.New()

	err := svc.ConsumeAttempt(context.Background(), userID, func() error { return nil })
	require.NoError(t, err)

	err = svc.ConsumeAttempt(context.Background(), userID, func() error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoAttemptsRemaining)
}

func TestConsumeAttempt_PaidTierAllowsThree(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{tier: domain.TierPaid})
	userID := uuid.New()

	for i := 0; i < PaidDailyAttempts; i++ {
		err := svc.ConsumeAttempt(context.Background(), userID, func() error { return nil })
		require.NoError(t, err, "attempt %d should be within allowance", i+1)
	}

	err := svc.ConsumeAttempt(context.Background(), userID, func() error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoAttemptsRemaining)
}

func TestConsumeAttempt_ResetsAtDayBoundary(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{tier: domain.TierFree})
	userID := uuid.New()

	day := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	require.NoError(t, svc.ConsumeAttempt(context.Background(), userID, func() error { return nil }))
	assert.ErrorIs(t, svc.ConsumeAttempt(context.Background(), userID, func() error { return nil }), domain.ErrNoAttemptsRemaining)

	svc.now = func() time.Time { return day.Add(2 * time.Hour) } // past midnight UTC
	assert.NoError(t, svc.ConsumeAttempt(context.Background(), userID, func() error { return nil }))
}

func TestConsumeAttempt_FnFailureRollsBack(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{tier: domain.TierFree})
	userID := uuid.New()

	failed := errors.New("attempt failed")
	err := svc.ConsumeAttempt(context.Background(), userID, func() error { return failed })
	assert.ErrorIs(t, err, failed)

	used, allowed, err := svc.Status(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, used)
	assert.Equal(t, FreeDailyAttempts, allowed)
}

func TestConsumeAttempt_DevModeBypassesLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DevMode = true
	svc := NewMemoryService(cfg, &stubTierSource{tier: domain.TierFree})
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.ConsumeAttempt(context.Background(), userID, func() error { return nil }))
	}
}

func TestConsumeAttempt_TierLookupFailure(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{err: errors.New("db down")})

	err := svc.ConsumeAttempt(context.Background(), uuid.New(), func() error { return nil })
	assert.Error(t, err)
}

func TestConsumeAttempt_IndependentUsers(t *testing.T) {
	svc := NewMemoryService(DefaultConfig(), &stubTierSource{tier: domain.TierFree})

	require.NoError(t, svc.ConsumeAttempt(context.Background(), uuid.New(), func() error { return nil }))
	require.NoError(t, svc.ConsumeAttempt(context.Background(), uuid.New(), func() error { return nil }))
}
