// Package postgres implements the repository interfaces against
// PostgreSQL via pgx.
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

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID retrieves a user by their ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `SELECT user_id, username FROM users WHERE user_id = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT user_id, username FROM users WHERE username = $1`

	var u domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &u, nil
}

// GetProgress retrieves a user's progression totals
func (r *UserRepository) GetProgress(ctx context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	query := `
		SELECT user_id, total_xp, gold, stat_points, updated_at
		FROM user_progress
		WHERE user_id = $1`

	var p domain.UserProgress
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.TotalXP, &p.Gold, &p.StatPoints, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	return &p, nil
}

// ApplyRewardDelta atomically adds reward deltas and returns the
// updated snapshot
func (r *UserRepository) ApplyRewardDelta(ctx context.Context, userID uuid.UUID, xpDelta, goldDelta int64, statPoints int) (*domain.UserProgress, error) {
	query := `
		UPDATE user_progress
		SET total_xp = total_xp + $2,
		    gold = gold + $3,
		    stat_points = stat_points + $4,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, total_xp, gold, stat_points, updated_at`

	var p domain.UserProgress
	err := r.db.QueryRow(ctx, query, userID, xpDelta, goldDelta, statPoints).
		Scan(&p.UserID, &p.TotalXP, &p.Gold, &p.StatPoints, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to apply reward delta: %w", err)
	}
	return &p, nil
}

// CreateUser registers a user with a zeroed progress row
func (r *UserRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var u domain.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING user_id, username`,
		username).Scan(&u.ID, &u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_progress (user_id) VALUES ($1)`, u.ID); err != nil {
		return nil, fmt.Errorf("failed to insert user progress: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &u, nil
}
