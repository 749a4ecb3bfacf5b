package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// Raid defines the interface for raid persistence.
//
// ApplyDamage is a compare-and-swap on the row version: it must fail with
// domain.ErrConcurrencyConflict when the row changed since it was read,
// so two concurrent attempts can never push damage past the pool.
type Raid interface {
	GetBosses(ctx context.Context) ([]domain.PortalBoss, error)
	GetBoss(ctx context.Context, bossID uuid.UUID) (*domain.PortalBoss, error)

	// GetProgress returns nil (no error) when the user has never attempted the boss.
	GetProgress(ctx context.Context, userID, bossID uuid.UUID) (*domain.PortalRaidProgress, error)
	GetAllProgress(ctx context.Context, userID uuid.UUID) ([]domain.PortalRaidProgress, error)

	// CreateProgress freezes maxHP at creation time.
	CreateProgress(ctx context.Context, userID, bossID uuid.UUID, maxHP int) (*domain.PortalRaidProgress, error)

	// ApplyDamage persists newDamage/completed iff version still matches.
	ApplyDamage(ctx context.Context, progressID uuid.UUID, version, newDamage int, completed bool) (*domain.PortalRaidProgress, error)
}
