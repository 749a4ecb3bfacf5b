package raid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avenmore/focusquest/internal/concurrency"
	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/event"
	"github.com/avenmore/focusquest/internal/limits"
	"github.com/avenmore/focusquest/internal/logger"
	"github.com/avenmore/focusquest/internal/metrics"
	"github.com/avenmore/focusquest/internal/repository"
	"github.com/avenmore/focusquest/internal/reward"
)

// Status is the raid overview for one user: the current boss, their
// accumulated progress against it, and advisory attempt projections.
type Status struct {
	Boss            *domain.PortalBoss         `json:"boss,omitempty"`
	Progress        *domain.PortalRaidProgress `json:"progress,omitempty"`
	State           domain.RaidState           `json:"state"`
	EstimatedMin    int                        `json:"estimated_attempts_min"`
	EstimatedMax    int                        `json:"estimated_attempts_max"`
	AttemptsUsed    int                        `json:"attempts_used"`
	AttemptsAllowed int                        `json:"attempts_allowed"`
}

// AttemptOutcome is the full result of one raid attempt.
type AttemptOutcome struct {
	Boss     domain.PortalBoss          `json:"boss"`
	Result   domain.RaidAttemptResult   `json:"result"`
	Progress *domain.PortalRaidProgress `json:"progress"`
	Delta    reward.Delta               `json:"delta"`
	Snapshot *domain.UserProgress       `json:"snapshot,omitempty"`
}

// Service orchestrates raid encounters
type Service interface {
	// ListBosses returns the map sequence with per-boss status for a user
	ListBosses(ctx context.Context, userID uuid.UUID) ([]domain.BossListEntry, error)

	// GetStatus returns the user's standing against the current boss
	GetStatus(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*Status, error)

	// Attempt executes one damage attempt against the current boss
	Attempt(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*AttemptOutcome, error)
}

type service struct {
	repo     repository.Raid
	userRepo repository.User
	limits   limits.Service
	ledger   *reward.Ledger
	bus      event.Bus
	locks    *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new raid service
func NewService(repo repository.Raid, userRepo repository.User, limitsSvc limits.Service, ledger *reward.Ledger, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		limits:   limitsSvc,
		ledger:   ledger,
		bus:      bus,
		locks:    locks,
		now:      time.Now,
	}
}

// ListBosses returns the map sequence with per-boss status for a user
func (s *service) ListBosses(ctx context.Context, userID uuid.UUID) ([]domain.BossListEntry, error) {
	bosses, err := s.repo.GetBosses(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetBossesFailed, err)
	}

	progress, err := s.progressByBoss(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BossStatuses(bosses, progress), nil
}

// GetStatus returns the user's standing against the current boss
func (s *service) GetStatus(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*Status, error) {
	used, allowed, err := s.limits.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	status := &Status{
		State:           domain.RaidStateNotStarted,
		AttemptsUsed:    used,
		AttemptsAllowed: allowed,
	}

	boss, err := s.currentBoss(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAllBossesDefeated) {
			status.State = domain.RaidStateCompleted
			return status, nil
		}
		return nil, err
	}
	status.Boss = boss

	prog, err := s.repo.GetProgress(ctx, userID, boss.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressFailed, err)
	}

	maxHP := ComputeMaxHP(boss.Rank, boss.Specialization, boss.BossLevel)
	remaining := maxHP
	if prog != nil {
		status.Progress = prog
		status.State = prog.State()
		maxHP = prog.MaxHP
		remaining = prog.MaxHP - prog.CurrentDamage
	}

	status.EstimatedMin, status.EstimatedMax = EstimateAttemptsNeeded(userStats, boss.BaseStats, maxHP, remaining)
	return status, nil
}

// Attempt executes one damage attempt against the current boss. The
// attempt is consumed from the daily allowance atomically with the
// damage write; a version conflict rolls the allowance back so the
// caller can retry with fresh state.
func (s *service) Attempt(ctx context.Context, userID uuid.UUID, userStats domain.BattlerStats) (*AttemptOutcome, error) {
	log := logger.FromContext(ctx)

	// Serialize attempts per user in-process; cross-instance safety
	// comes from the version CAS and the allowance advisory lock
	lock := s.locks.GetLock(lockKeyAttempt + userID.String())
	lock.Lock()
	defer lock.Unlock()

	boss, err := s.currentBoss(ctx, userID)
	if err != nil {
		return nil, err
	}

	prog, err := s.repo.GetProgress(ctx, userID, boss.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressFailed, err)
	}
	if prog == nil {
		maxHP := ComputeMaxHP(boss.Rank, boss.Specialization, boss.BossLevel)
		prog, err = s.repo.CreateProgress(ctx, userID, boss.ID, maxHP)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateProgressFailed, err)
		}
	}
	if prog.Completed {
		return nil, domain.ErrRaidCompleted
	}

	userProg, err := s.userRepo.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	var updated *domain.PortalRaidProgress
	var damage int
	// ApplyDamage commits on the repository's own connection, not inside
	// the limits transaction. If the limits commit fails after the damage
	// landed, the damage stands and the attempt is not consumed. That
	// window only opens on a commit failure and only ever favors the
	// player, so it is accepted rather than spanning both writes in one
	// transaction.
	err = s.limits.ConsumeAttempt(ctx, userID, func() error {
		seq := AttemptSequence(userID, boss.ID, prog.CurrentDamage)
		remaining := prog.MaxHP - prog.CurrentDamage
		damage = RollDamage(userStats, boss.BaseStats, prog.MaxHP, remaining, seq)

		newDamage := prog.CurrentDamage + damage
		completed := newDamage >= prog.MaxHP

		applied, applyErr := s.repo.ApplyDamage(ctx, prog.ID, prog.Version, newDamage, completed)
		if applyErr != nil {
			return fmt.Errorf(ErrMsgApplyDamageFailed, applyErr)
		}
		updated = applied
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoAttemptsRemaining) {
			metrics.AttemptsRejected.Inc()
		}
		return nil, err
	}
	metrics.RaidAttempts.Inc()

	outcome := &AttemptOutcome{
		Boss: *boss,
		Result: domain.RaidAttemptResult{
			DamageDealt:  damage,
			BossDefeated: updated.Completed,
		},
		Progress: updated,
	}

	if updated.Completed {
		outcome.Result.XPEarned, outcome.Result.GoldEarned = CalculateBossRewards(boss.Rank, boss.BossLevel)
		if err := s.settleDefeat(ctx, userID, boss, userProg, outcome); err != nil {
			return nil, err
		}
	}

	log.Info(LogMsgAttemptExecuted,
		"userID", userID,
		"boss", boss.Name,
		"damage", damage,
		"progressPercent", updated.ProgressPercent(),
		"defeated", updated.Completed)
	return outcome, nil
}

// settleDefeat grants boss rewards and publishes transition events.
func (s *service) settleDefeat(ctx context.Context, userID uuid.UUID, boss *domain.PortalBoss, userProg *domain.UserProgress, outcome *AttemptOutcome) error {
	log := logger.FromContext(ctx)

	delta := s.ledger.SettleRaidAttempt(userProg.TotalXP, outcome.Result)
	snapshot, err := s.userRepo.ApplyRewardDelta(ctx, userID, delta.XPDelta, delta.GoldDelta, delta.StatPoints)
	if err != nil {
		return fmt.Errorf(ErrMsgSettleRewardsFailed, err)
	}
	outcome.Delta = delta
	outcome.Snapshot = snapshot

	metrics.RaidBossesDefeated.Inc()
	metrics.XPGranted.Add(float64(delta.XPDelta))
	metrics.GoldGranted.Add(float64(delta.GoldDelta))

	if err := s.bus.Publish(ctx, event.NewRaidBossDefeatedEvent(userID.String(), boss.ID.String(), boss.Name)); err != nil {
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
	return nil
}

// currentBoss resolves the single attackable boss in map order.
func (s *service) currentBoss(ctx context.Context, userID uuid.UUID) (*domain.PortalBoss, error) {
	bosses, err := s.repo.GetBosses(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetBossesFailed, err)
	}
	if len(bosses) == 0 {
		return nil, domain.ErrBossNotFound
	}

	progress, err := s.progressByBoss(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[uuid.UUID]bool, len(progress))
	for id, p := range progress {
		completed[id] = p.Completed
	}

	boss := ResolveCurrentBoss(bosses, completed)
	if boss == nil {
		return nil, domain.ErrAllBossesDefeated
	}
	return boss, nil
}

func (s *service) progressByBoss(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]*domain.PortalRaidProgress, error) {
	rows, err := s.repo.GetAllProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressFailed, err)
	}
	byBoss := make(map[uuid.UUID]*domain.PortalRaidProgress, len(rows))
	for i := range rows {
		byBoss[rows[i].BossID] = &rows[i]
	}
	return byBoss, nil
}
