package worker

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/infra/timestore"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/usecase/commands"
)

// SchedulePoller drains due entries from the schedule store. It is the
// recovery path next to the broker consumer: every trigger is registered on
// both, and whichever fires first wins because execution is idempotent.
type SchedulePoller struct {
	store    *timestore.RedisScheduleStore
	draws    commands.DrawCommands
	clock    clock.Clock
	interval time.Duration
}

func NewSchedulePoller(
	store *timestore.RedisScheduleStore,
	draws commands.DrawCommands,
	clk clock.Clock,
	interval time.Duration,
) *SchedulePoller {
	if interval <= 0 {
		interval = time.Second
	}
	return &SchedulePoller{
		store:    store,
		draws:    draws,
		clock:    clk,
		interval: interval,
	}
}

// Run polls until the context is cancelled.
func (p *SchedulePoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.Tick(ctx); err != nil {
				slog.Error("schedule poll failed", "error", err)
			}
		}
	}
}

// Tick processes one batch of due entries. An entry is removed only after its
// draw executed or failed terminally; transient failures leave it in the set
// for the next tick.
func (p *SchedulePoller) Tick(ctx context.Context) error {
	due, err := p.store.Due(ctx, p.clock.Now())
	if err != nil {
		return err
	}

	for _, entry := range due {
		err := p.draws.ExecuteDrawing(ctx, entry.Event.RaffleID)
		if err != nil && !commands.IsTerminalDrawError(err) {
			slog.Warn("scheduled draw failed, will retry",
				"raffle_id", entry.Event.RaffleID, "error", err)
			continue
		}
		if err != nil {
			slog.Info("scheduled draw rejected",
				"raffle_id", entry.Event.RaffleID, "reason", err.Error())
		}
		if remErr := p.store.Remove(ctx, entry.Member); remErr != nil {
			slog.Error("failed to remove executed schedule entry",
				"raffle_id", entry.Event.RaffleID, "error", remErr)
		}
	}
	return nil
}
