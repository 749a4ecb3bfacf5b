// Package user exposes read-side progression state: the persisted XP
// and gold totals plus everything derivable from them (level, rank,
// progress into the current level).
package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
	"github.com/avenmore/focusquest/internal/repository"
)

// Snapshot is a user's full progression standing at one point in time.
type Snapshot struct {
	User          domain.User          `json:"user"`
	Progress      domain.UserProgress  `json:"progress"`
	Level         int                  `json:"level"`
	Rank          domain.Rank          `json:"rank"`
	LevelProgress domain.LevelProgress `json:"level_progress"`
}

// Service defines the interface for user progression queries
type Service interface {
	// GetSnapshot returns the user's current progression standing
	GetSnapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error)

	// GetByUsername resolves a username to a user
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

// GetSnapshot returns the user's current progression standing
func (s *service) GetSnapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	level := progression.LevelForTotalXP(progress.TotalXP)
	return &Snapshot{
		User:          *u,
		Progress:      *progress,
		Level:         level,
		Rank:          progression.RankForLevel(level),
		LevelProgress: progression.LevelProgressFor(progress.TotalXP),
	}, nil
}

// GetByUsername resolves a username to a user
func (s *service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}
