package bootstrap

import (
	"context"
	"log/slog"

	"github.com/avenmore/focusquest/internal/event"
)

// RegisterEventHandlers subscribes the built-in handlers to the bus.
// Progression milestones (level ups, rank ups, boss defeats) get an
// announcement log entry so operators can follow player milestones
// without querying the database.
func RegisterEventHandlers(eventBus event.Bus) {
	eventBus.Subscribe(event.ProgressLevelUp, func(ctx context.Context, e event.Event) error {
		if p, ok := e.Payload.(event.LevelUpPayloadV1); ok {
			slog.Info(LogMsgLevelUpAnnounce, "user_id", p.UserID, "old_level", p.OldLevel, "new_level", p.NewLevel)
		}
		return nil
	})

	eventBus.Subscribe(event.ProgressRankUp, func(ctx context.Context, e event.Event) error {
		if p, ok := e.Payload.(event.RankUpPayloadV1); ok {
			slog.Info(LogMsgRankUpAnnounce, "user_id", p.UserID, "old_rank", p.OldRank, "new_rank", p.NewRank)
		}
		return nil
	})

	eventBus.Subscribe(event.RaidBossDefeated, func(ctx context.Context, e event.Event) error {
		if p, ok := e.Payload.(event.RaidBossDefeatedPayloadV1); ok {
			slog.Info(LogMsgBossDefeatedAnnounce, "user_id", p.UserID, "boss", p.BossName)
		}
		return nil
	})

	slog.Info(LogMsgEventHandlersRegistered)
}
