package limits

import (
	"time"

	"github.com/avenmore/focusquest/internal/domain"
)

// Config holds daily limit settings
type Config struct {
	// DevMode bypasses all limits for local testing
	DevMode bool

	FreeAttempts int
	PaidAttempts int
}

// DefaultConfig returns production limit settings
func DefaultConfig() Config {
	return Config{
		FreeAttempts: FreeDailyAttempts,
		PaidAttempts: PaidDailyAttempts,
	}
}

// AllowanceFor returns the daily attempt cap for a tier.
func (c Config) AllowanceFor(tier domain.SubscriptionTier) int {
	if tier == domain.TierPaid {
		return c.PaidAttempts
	}
	return c.FreeAttempts
}

// dayOf truncates a timestamp to its UTC day. All limit rows are keyed
// on this value so the allowance resets exactly at the UTC boundary.
func dayOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
