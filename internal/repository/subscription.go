package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// Subscription defines the interface for subscription tier lookups.
// Billing itself lives outside this service; only the tier matters here.
type Subscription interface {
	GetTier(ctx context.Context, userID uuid.UUID) (domain.SubscriptionTier, error)
}
