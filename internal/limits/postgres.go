package limits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/logger"
	"github.com/avenmore/focusquest/internal/rng"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	tiers  TierSource
	now    func() time.Time
}

// NewPostgresService creates a new daily limit service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config, tiers TierSource) Service {
	return &postgresBackend{
		db:     db,
		config: config,
		tiers:  tiers,
		now:    time.Now,
	}
}

// Status returns attempts used today and the allowance (unlocked read)
func (b *postgresBackend) Status(ctx context.Context, userID uuid.UUID) (int, int, error) {
	tier, err := b.tiers.GetTier(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgGetTierFailed, err)
	}
	allowed := b.config.AllowanceFor(tier)

	used, err := b.getAttemptsUsed(ctx, userID, dayOf(b.now()))
	if err != nil {
		return 0, 0, err
	}
	return used, allowed, nil
}

// ConsumeAttempt atomically reserves one attempt and executes fn.
// The counter row may not exist yet for today, so mutual exclusion uses
// an advisory lock rather than SELECT FOR UPDATE.
func (b *postgresBackend) ConsumeAttempt(ctx context.Context, userID uuid.UUID, fn func() error) error {
	log := logger.FromContext(ctx)

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "userID", userID)
		return fn()
	}

	tier, err := b.tiers.GetTier(ctx, userID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetTierFailed, err)
	}
	allowed := b.config.AllowanceFor(tier)
	day := dayOf(b.now())

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	lockKey := rng.Seed(LockSeedTag, userID.String())
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	used, err := b.getAttemptsUsedTx(ctx, tx, userID, day)
	if err != nil {
		return err
	}
	if used >= allowed {
		log.Debug(LogMsgAllowanceReached, "userID", userID, "used", used, "allowed", allowed)
		return domain.ErrNoAttemptsRemaining
	}

	// Reserve before fn so a crash inside fn never grants a free retry;
	// fn failure rolls the whole transaction back
	if _, err := tx.Exec(ctx, SQLIncrementAttempts, userID, day); err != nil {
		return fmt.Errorf(ErrMsgIncrementFailed, err)
	}

	if err := fn(); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgAttemptConsumed, "userID", userID, "used", used+1, "allowed", allowed)
	return nil
}

func (b *postgresBackend) getAttemptsUsed(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	var used int
	err := b.db.QueryRow(ctx, SQLSelectAttemptsUsed, userID, day).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf(ErrMsgGetAttemptsFailed, err)
	}
	return used, nil
}

func (b *postgresBackend) getAttemptsUsedTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, day time.Time) (int, error) {
	var used int
	err := tx.QueryRow(ctx, SQLSelectAttemptsUsed, userID, day).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf(ErrMsgGetAttemptsFailed, err)
	}
	return used, nil
}
