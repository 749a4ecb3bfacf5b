// Package event provides a small in-process bus for one-shot domain
// events. Handlers run synchronously on publish; a failing handler
// never blocks the others.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avenmore/focusquest/internal/metrics"
)

// EventSchemaVersion is the version of the event payload schemas.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event types published by the engine.
const (
	BattleCompleted  Type = "battle.completed"
	RaidBossDefeated Type = "raid.boss_defeated"
	ProgressLevelUp  Type = "progress.level_up"
	ProgressRankUp   Type = "progress.rank_up"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler processes one event. Returning an error marks the publish
// partially failed but does not stop other handlers.
type Handler func(ctx context.Context, event Event) error

// Bus publishes events to subscribed handlers.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// BattleCompletedPayloadV1 is the typed payload for battle completion events
type BattleCompletedPayloadV1 struct {
	UserID     string `json:"user_id"`
	OpponentID string `json:"opponent_id"`
	DidWin     bool   `json:"did_win"`
	Tier       string `json:"tier"`
	XPEarned   int    `json:"xp_earned"`
	GoldEarned int    `json:"gold_earned"`
	Timestamp  int64  `json:"timestamp"`
}

// RaidBossDefeatedPayloadV1 is the typed payload for boss defeat events
type RaidBossDefeatedPayloadV1 struct {
	UserID    string `json:"user_id"`
	BossID    string `json:"boss_id"`
	BossName  string `json:"boss_name"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// RankUpPayloadV1 is the typed payload for rank up events
type RankUpPayloadV1 struct {
	UserID  string `json:"user_id"`
	OldRank string `json:"old_rank"`
	NewRank string `json:"new_rank"`
}

// NewBattleCompletedEvent creates a new battle completed event
func NewBattleCompletedEvent(userID, opponentID string, didWin bool, tier string, xp, gold int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleCompleted,
		Payload: BattleCompletedPayloadV1{
			UserID:     userID,
			OpponentID: opponentID,
			DidWin:     didWin,
			Tier:       tier,
			XPEarned:   xp,
			GoldEarned: gold,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewRaidBossDefeatedEvent creates a new boss defeated event
func NewRaidBossDefeatedEvent(userID, bossID, bossName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaidBossDefeated,
		Payload: RaidBossDefeatedPayloadV1{
			UserID:    userID,
			BossID:    bossID,
			BossName:  bossName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressLevelUp,
		Payload: LevelUpPayloadV1{UserID: userID, OldLevel: oldLevel, NewLevel: newLevel},
	}
}

// NewRankUpEvent creates a new rank up event
func NewRankUpEvent(userID, oldRank, newRank string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressRankUp,
		Payload: RankUpPayloadV1{UserID: userID, OldRank: oldRank, NewRank: newRank},
	}
}
