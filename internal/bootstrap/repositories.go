package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenmore/focusquest/internal/database/postgres"
	"github.com/avenmore/focusquest/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User         repository.User
	Raid         repository.Raid
	Subscription repository.Subscription
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:         postgres.NewUserRepository(dbPool),
		Raid:         postgres.NewRaidRepository(dbPool),
		Subscription: postgres.NewSubscriptionRepository(dbPool),
	}
}
