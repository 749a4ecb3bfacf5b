package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenmore/focusquest/internal/battle"
	"github.com/avenmore/focusquest/internal/combat"
	"github.com/avenmore/focusquest/internal/concurrency"
	"github.com/avenmore/focusquest/internal/config"
	"github.com/avenmore/focusquest/internal/event"
	"github.com/avenmore/focusquest/internal/limits"
	"github.com/avenmore/focusquest/internal/opponent"
	"github.com/avenmore/focusquest/internal/raid"
	"github.com/avenmore/focusquest/internal/reward"
	"github.com/avenmore/focusquest/internal/subscription"
	"github.com/avenmore/focusquest/internal/user"
)

// Services holds the application service layer.
type Services struct {
	Battle       battle.Service
	Raid         raid.Service
	User         user.Service
	Limits       limits.Service
	Subscription subscription.Service
}

// InitializeServices wires the full service graph on top of the
// repositories. The combat resolver and opponent generator are shared
// between the battle and raid paths so both draw from the same
// deterministic math.
func InitializeServices(cfg *config.Config, dbPool *pgxpool.Pool, repos *Repositories, eventBus event.Bus) *Services {
	subscriptionService := subscription.NewService(repos.Subscription)

	limitsConfig := limits.DefaultConfig()
	limitsConfig.DevMode = cfg.DevMode
	limitsService := limits.NewPostgresService(dbPool, limitsConfig, subscriptionService)

	resolver := combat.NewResolver()
	generator := opponent.NewGenerator(resolver)
	ledger := reward.NewLedger()
	locks := concurrency.NewLockManager()

	return &Services{
		Battle:       battle.NewService(repos.User, resolver, generator, ledger, eventBus),
		Raid:         raid.NewService(repos.Raid, repos.User, limitsService, ledger, eventBus, locks),
		User:         user.NewService(repos.User),
		Limits:       limitsService,
		Subscription: subscriptionService,
	}
}
