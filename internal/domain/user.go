package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// UserProgress is the persistent progression snapshot for a user.
// TotalXP is the lifetime accumulator the level curve is derived from.
type UserProgress struct {
	UserID     uuid.UUID `json:"user_id"`
	TotalXP    int64     `json:"total_xp"`
	Gold       int64     `json:"gold"`
	StatPoints int       `json:"stat_points"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DailyLimits tracks per-day consumable attempts for one user.
// Rows are keyed by calendar day, so the first access after local
// midnight observes a fresh zero count.
type DailyLimits struct {
	UserID           uuid.UUID `json:"user_id"`
	Day              time.Time `json:"day"`
	BossAttemptsUsed int       `json:"boss_attempts_used"`
}

// SubscriptionTier is the billing tier that scales daily attempt caps.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPaid SubscriptionTier = "paid"
)
