package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenmore/focusquest/internal/domain"
	"github.com/avenmore/focusquest/internal/progression"
)

// RaidRepository implements repository.Raid for PostgreSQL
type RaidRepository struct {
	db *pgxpool.Pool
}

// NewRaidRepository creates a new RaidRepository
func NewRaidRepository(db *pgxpool.Pool) *RaidRepository {
	return &RaidRepository{db: db}
}

const bossColumns = `boss_id, name, rank_code, boss_level, specialization, health, attack, defense, speed, focus_power, map_order`

const progressColumns = `progress_id, user_id, boss_id, max_hp, current_damage, completed, completed_at, version, created_at, updated_at`

// GetBosses returns every boss in map order
func (r *RaidRepository) GetBosses(ctx context.Context) ([]domain.PortalBoss, error) {
	query := fmt.Sprintf(`SELECT %s FROM portal_bosses ORDER BY map_order`, bossColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bosses: %w", err)
	}
	defer rows.Close()

	var bosses []domain.PortalBoss
	for rows.Next() {
		boss, err := scanBoss(rows)
		if err != nil {
			return nil, err
		}
		bosses = append(bosses, *boss)
	}
	return bosses, rows.Err()
}

// GetBoss retrieves one boss by ID
func (r *RaidRepository) GetBoss(ctx context.Context, bossID uuid.UUID) (*domain.PortalBoss, error) {
	query := fmt.Sprintf(`SELECT %s FROM portal_bosses WHERE boss_id = $1`, bossColumns)

	row := r.db.QueryRow(ctx, query, bossID)
	boss, err := scanBoss(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBossNotFound
		}
		return nil, err
	}
	return boss, nil
}

// GetProgress returns the user's progress against one boss, or nil when
// the boss was never attempted
func (r *RaidRepository) GetProgress(ctx context.Context, userID, bossID uuid.UUID) (*domain.PortalRaidProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM portal_raid_progress WHERE user_id = $1 AND boss_id = $2`, progressColumns)

	p, err := scanProgress(r.db.QueryRow(ctx, query, userID, bossID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// GetAllProgress returns all of the user's progress rows
func (r *RaidRepository) GetAllProgress(ctx context.Context, userID uuid.UUID) ([]domain.PortalRaidProgress, error) {
	query := fmt.Sprintf(`SELECT %s FROM portal_raid_progress WHERE user_id = $1`, progressColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query raid progress: %w", err)
	}
	defer rows.Close()

	var out []domain.PortalRaidProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// CreateProgress inserts a fresh progress row with the pool frozen at
// maxHP. A concurrent insert for the same user+boss wins quietly; the
// existing row is returned instead.
func (r *RaidRepository) CreateProgress(ctx context.Context, userID, bossID uuid.UUID, maxHP int) (*domain.PortalRaidProgress, error) {
	query := fmt.Sprintf(`
		INSERT INTO portal_raid_progress (user_id, boss_id, max_hp)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, boss_id) DO NOTHING
		RETURNING %s`, progressColumns)

	p, err := scanProgress(r.db.QueryRow(ctx, query, userID, bossID, maxHP))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.GetProgress(ctx, userID, bossID)
		}
		return nil, fmt.Errorf("failed to create raid progress: %w", err)
	}
	return p, nil
}

// ApplyDamage persists the new damage total iff the row version still
// matches. A mismatch means another attempt landed first; the caller
// gets domain.ErrConcurrencyConflict and must reload.
func (r *RaidRepository) ApplyDamage(ctx context.Context, progressID uuid.UUID, version, newDamage int, completed bool) (*domain.PortalRaidProgress, error) {
	query := fmt.Sprintf(`
		UPDATE portal_raid_progress
		SET current_damage = $3,
		    completed = $4,
		    completed_at = CASE WHEN $4 AND completed_at IS NULL THEN NOW() ELSE completed_at END,
		    version = version + 1,
		    updated_at = NOW()
		WHERE progress_id = $1 AND version = $2
		RETURNING %s`, progressColumns)

	p, err := scanProgress(r.db.QueryRow(ctx, query, progressID, version, newDamage, completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConcurrencyConflict
		}
		return nil, fmt.Errorf("failed to apply damage: %w", err)
	}
	return p, nil
}

func scanBoss(row pgx.Row) (*domain.PortalBoss, error) {
	var b domain.PortalBoss
	var rankCode, spec string
	err := row.Scan(&b.ID, &b.Name, &rankCode, &b.BossLevel, &spec,
		&b.BaseStats.Health, &b.BaseStats.Attack, &b.BaseStats.Defense, &b.BaseStats.Speed,
		&b.BaseStats.FocusPower, &b.MapOrder)
	if err != nil {
		return nil, err
	}
	b.BaseStats.Level = b.BossLevel

	if idx := progression.RankIndex(rankCode); idx >= 0 {
		b.Rank = progression.Ranks[idx]
	}
	b.Specialization = specializationFromString(spec)
	return &b, nil
}

func scanProgress(row pgx.Row) (*domain.PortalRaidProgress, error) {
	var p domain.PortalRaidProgress
	err := row.Scan(&p.ID, &p.UserID, &p.BossID, &p.MaxHP, &p.CurrentDamage,
		&p.Completed, &p.CompletedAt, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func specializationFromString(s string) domain.Specialization {
	switch s {
	case domain.SpecTank.String():
		return domain.SpecTank
	case domain.SpecGlassCannon.String():
		return domain.SpecGlassCannon
	case domain.SpecSpeedster.String():
		return domain.SpecSpeedster
	default:
		return domain.SpecBalanced
	}
}
