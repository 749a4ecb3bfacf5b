package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetProgress returns domain.ErrProgressNotFound for a missing row;
	// reward settlement needs accurate prior totals, never a phantom
	// level-1 default.
	GetProgress(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error)

	// ApplyRewardDelta atomically adds the XP/gold/stat-point deltas and
	// returns the updated snapshot.
	ApplyRewardDelta(ctx context.Context, userID uuid.UUID, xpDelta, goldDelta int64, statPoints int) (*domain.UserProgress, error)
}
