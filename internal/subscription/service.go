// Package subscription resolves user tiers for freemium gating. Tier
// lookups sit on the raid attempt hot path, so results are served from
// an expiring LRU in front of the repository.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/repository"
)

const (
	// CacheTTL bounds how stale a served tier can be after an upgrade
	CacheTTL = 5 * time.Minute

	// CacheSize caps resident entries; evicted users just refetch
	CacheSize = 10_000
)

// Service defines the interface for subscription tier lookups
type Service interface {
	// GetTier returns the user's current tier. Users without a
	// subscription row resolve to the free tier.
	GetTier(ctx context.Context, userID uuid.UUID) (domain.SubscriptionTier, error)

	// Invalidate drops a user's cached tier after a subscription change
	Invalidate(userID uuid.UUID)
}

type service struct {
	repo  repository.Subscription
	cache *expirable.LRU[uuid.UUID, domain.SubscriptionTier]
}

// NewService creates a new subscription service
func NewService(repo repository.Subscription) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[uuid.UUID, domain.SubscriptionTier](CacheSize, nil, CacheTTL),
	}
}

// GetTier returns the user's current tier, cached
func (s *service) GetTier(ctx context.Context, userID uuid.UUID) (domain.SubscriptionTier, error) {
	if tier, ok := s.cache.Get(userID); ok {
		return tier, nil
	}

	tier, err := s.repo.GetTier(ctx, userID)
	if err != nil {
		return domain.TierFree, fmt.Errorf("failed to get subscription tier: %w", err)
	}

	s.cache.Add(userID, tier)
	return tier, nil
}

// Invalidate drops a user's cached tier after a subscription change
func (s *service) Invalidate(userID uuid.UUID) {
	s.cache.Remove(userID)
	slog.Debug("Subscription tier cache invalidated", "userID", userID)
}
