package domain

import (
	"time"

	"github.com/google/uuid"
)

// RaidState is the lifecycle state of a user's encounter with one boss.
type RaidState string

const (
	RaidStateNotStarted RaidState = "not_started"
	RaidStateInProgress RaidState = "in_progress"
	RaidStateCompleted  RaidState = "completed"
)

// BossStatus describes a boss's position in the user's map sequence.
type BossStatus string

const (
	BossStatusDefeated BossStatus = "defeated"
	BossStatusCurrent  BossStatus = "current"
	BossStatusLocked   BossStatus = "locked"
)

// PortalBoss is immutable reference data for a multi-attempt encounter.
// MapOrder defines the strict sequence used for progression gating.
type PortalBoss struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Rank           Rank           `json:"rank"`
	BossLevel      int            `json:"boss_level"`
	Specialization Specialization `json:"specialization"`
	BaseStats      BattlerStats   `json:"base_stats"`
	MapOrder       int            `json:"map_order"`
}

// PortalRaidProgress is the persistent per user×boss damage accumulator.
// MaxHP is frozen at creation; CurrentDamage only ever increases and is
// clamped to MaxHP. Version backs the optimistic-lock update path.
type PortalRaidProgress struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	BossID        uuid.UUID  `json:"boss_id"`
	MaxHP         int        `json:"max_hp"`
	CurrentDamage int        `json:"current_damage"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProgressPercent returns cumulative damage as a percentage of the pool.
func (p *PortalRaidProgress) ProgressPercent() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return 100 * float64(p.CurrentDamage) / float64(p.MaxHP)
}

// State derives the lifecycle state from the accumulated damage.
func (p *PortalRaidProgress) State() RaidState {
	switch {
	case p.Completed:
		return RaidStateCompleted
	case p.CurrentDamage > 0:
		return RaidStateInProgress
	default:
		return RaidStateNotStarted
	}
}

// RaidAttemptResult is the ephemeral outcome of one attempt.
type RaidAttemptResult struct {
	DamageDealt  int  `json:"damage_dealt"`
	BossDefeated bool `json:"boss_defeated"`
	XPEarned     int  `json:"xp_earned"`
	GoldEarned   int  `json:"gold_earned"`
}

// BossListEntry pairs a boss with its sequence status for display.
type BossListEntry struct {
	Boss            PortalBoss `json:"boss"`
	Status          BossStatus `json:"status"`
	ProgressPercent float64    `json:"progress_percent"`
}
