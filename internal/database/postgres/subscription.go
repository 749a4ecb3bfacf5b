package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenmore/focusquest/internal/domain"
)

// SubscriptionRepository implements repository.Subscription for PostgreSQL
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetTier returns the user's subscription tier. Users without a row are
// on the free tier.
func (r *SubscriptionRepository) GetTier(ctx context.Context, userID uuid.UUID) (domain.SubscriptionTier, error) {
	query := `SELECT tier FROM subscriptions WHERE user_id = $1`

	var tier string
	err := r.db.QueryRow(ctx, query, userID).Scan(&tier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TierFree, nil
		}
		return domain.TierFree, fmt.Errorf("failed to get subscription tier: %w", err)
	}

	if tier == string(domain.TierPaid) {
		return domain.TierPaid, nil
	}
	return domain.TierFree, nil
}

// SetTier upserts the user's subscription tier
func (r *SubscriptionRepository) SetTier(ctx context.Context, userID uuid.UUID, tier domain.SubscriptionTier) error {
	query := `
		INSERT INTO subscriptions (user_id, tier)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET tier = EXCLUDED.tier, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, userID, string(tier)); err != nil {
		return fmt.Errorf("failed to set subscription tier: %w", err)
	}
	return nil
}
