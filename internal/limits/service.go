// Package limits enforces the per-day raid attempt allowance. Free
// users get one boss attempt per UTC day, paid users get three; the
// counter resets at the day boundary with no carry-over.
package limits

import (
	"context"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// Service manages daily attempt allowances for users
type Service interface {
	// Status returns attempts used today and the user's daily allowance
	Status(ctx context.Context, userID uuid.UUID) (used, allowed int, err error)

	// ConsumeAttempt atomically reserves one attempt and executes fn.
	// If fn fails the reservation is rolled back. Returns
	// domain.ErrNoAttemptsRemaining when the allowance is exhausted.
	ConsumeAttempt(ctx context.Context, userID uuid.UUID, fn func() error) error
}

// TierSource resolves a user's subscription tier. Satisfied by the
// subscription service.
type TierSource interface {
	GetTier(ctx context.Context, userID uuid.UUID) (domain.SubscriptionTier, error)
}
