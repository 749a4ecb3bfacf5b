// Package battle orchestrates single-shot duels against generated
// opponents: roster lookup, outcome resolution, reward settlement and
// event publication. All randomness is deterministic per matchup, so a
// replayed request settles identically.
package battle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/combat"
	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/event"
	"github.com/avenmore/focusquest/internal/logger"
	"github.com/avenmore/focusquest/internal/metrics"
	"github.com/avenmore/focusquest/internal/opponent"
	"github.com/avenmore/focusquest/internal/progression"
	"github.com/avenmore/focusquest/internal/repository"
	"github.com/avenmore/focusquest/internal/reward"
)

// Outcome is the full settled result of one battle.
type Outcome struct {
	Opponent domain.Opponent      `json:"opponent"`
	Result   domain.BattleResult  `json:"result"`
	Delta    reward.Delta         `json:"delta"`
	Snapshot *domain.UserProgress `json:"snapshot"`
}

// Service defines the interface for battle operations
type Service interface {
	// GetOpponents returns the user's current roster. The roster is a
	// pure function of level and focus power, so it only reshuffles
	// when the user's standing changes.
	GetOpponents(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) ([]domain.Opponent, error)

	// Battle resolves a duel against a roster opponent and settles rewards.
	Battle(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats, opponentID string) (*Outcome, error)
}

type service struct {
	userRepo  repository.User
	resolver  *combat.Resolver
	generator *opponent.Generator
	ledger    *reward.Ledger
	bus       event.Bus
}

// NewService creates a new battle service
func NewService(userRepo repository.User, resolver *combat.Resolver, generator *opponent.Generator, ledger *reward.Ledger, bus event.Bus) Service {
	return &service{
		userRepo:  userRepo,
		resolver:  resolver,
		generator: generator,
		ledger:    ledger,
		bus:       bus,
	}
}

// GetOpponents returns the user's current roster
func (s *service) GetOpponents(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) ([]domain.Opponent, error) {
	level, err := s.currentLevel(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.generator.Generate(level, userStats.FocusPower), nil
}

// Battle resolves a duel against a roster opponent and settles rewards
func (s *service) Battle(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats, opponentID string) (*Outcome, error) {
	log := logger.FromContext(ctx)

	userProg, err := s.userRepo.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	level := progression.LevelForTotalXP(userProg.TotalXP)

	opp, err := s.findOpponent(level, userStats.FocusPower, opponentID)
	if err != nil {
		return nil, err
	}

	result := s.resolver.ExecuteBattle(userStats, opp.Stats, opp.ID, &opp.ExactGold)

	delta := s.ledger.SettleBattle(userProg.TotalXP, result)
	snapshot, err := s.userRepo.ApplyRewardDelta(ctx, userID, delta.XPDelta, delta.GoldDelta, delta.StatPoints)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSettleRewardsFailed, err)
	}

	s.recordOutcome(ctx, userID, opp, result, delta)

	log.Info(LogMsgBattleResolved,
		"userID", userID,
		"opponent", opp.Name,
		"tier", result.Tier.String(),
		"didWin", result.DidWin,
		"xp", result.XPEarned,
		"gold", result.GoldEarned)

	return &Outcome{
		Opponent: *opp,
		Result:   result,
		Delta:    delta,
		Snapshot: snapshot,
	}, nil
}

// findOpponent regenerates the deterministic roster and locates the
// requested entry. A stale ID (user leveled up since the roster was
// served) is rejected rather than guessed at.
func (s *service) findOpponent(level, focusPower int, opponentID string) (*domain.Opponent, error) {
	roster := s.generator.Generate(level, focusPower)
	for i := range roster {
		if roster[i].ID == opponentID {
			return &roster[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOpponentNotFound, opponentID)
}

func (s *service) recordOutcome(ctx context.Context, userID uuid.UUID, opp *domain.Opponent, result domain.BattleResult, delta reward.Delta) {
	log := logger.FromContext(ctx)

	outcome := outcomeLoss
	if result.DidWin {
		outcome = outcomeWin
	}
	metrics.BattlesResolved.WithLabelValues(result.Tier.String(), outcome).Inc()
	metrics.XPGranted.Add(float64(delta.XPDelta))
	metrics.GoldGranted.Add(float64(delta.GoldDelta))

	if err := s.bus.Publish(ctx, event.NewBattleCompletedEvent(userID.String(), opp.ID, result.DidWin, result.Tier.String(), result.XPEarned, result.GoldEarned)); err != nil {
		log.Warn(LogMsgEventPublishFailed, "error", err)
	}
	if delta.LevelUp != nil {
		if err := s.bus.Publish(ctx, event.NewLevelUpEvent(userID.String(), delta.LevelUp.OldLevel, delta.LevelUp.NewLevel)); err != nil {
			log.Warn(LogMsgEventPublishFailed, "error", err)
		}
	}
	if delta.RankUp != nil {
		if err := s.bus.Publish(ctx, event.NewRankUpEvent(userID.String(), delta.RankUp.OldRank.Code, delta.RankUp.NewRank.Code)); err != nil {
			log.Warn(LogMsgEventPublishFailed, "error", err)
		}
	}
}

func (s *service) currentLevel(ctx context.Context, userID uuid.UUID) (int, error) {
	userProg, err := s.userRepo.GetProgress(ctx, userID)
	if err != nil {
		return 0, err
	}
	return progression.LevelForTotalXP(userProg.TotalXP), nil
}
