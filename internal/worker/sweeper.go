package worker

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/commands"
)

// LifecycleSweeper runs the two daily lifecycle sweeps. Activation and close
// are deliberately independent schedules: one failing or lagging never blocks
// the other.
type LifecycleSweeper struct {
	lifecycle  commands.LifecycleCommands
	clock      clock.Clock
	activateAt string
	closeAt    string
}

func NewLifecycleSweeper(lifecycle commands.LifecycleCommands, clk clock.Clock, activateAt, closeAt string) (*LifecycleSweeper, error) {
	for _, at := range []string{activateAt, closeAt} {
		if _, err := time.Parse("15:04", at); err != nil {
			return nil, errs.Wrap(err, "invalid sweep time, want HH:MM")
		}
	}
	return &LifecycleSweeper{
		lifecycle:  lifecycle,
		clock:      clk,
		activateAt: activateAt,
		closeAt:    closeAt,
	}, nil
}

func (s *LifecycleSweeper) RunActivation(ctx context.Context) error {
	return s.runDaily(ctx, s.activateAt, "activation", func(ctx context.Context) (int, error) {
		return s.lifecycle.ActivateDueRaffles(ctx)
	})
}

func (s *LifecycleSweeper) RunClose(ctx context.Context) error {
	return s.runDaily(ctx, s.closeAt, "close", func(ctx context.Context) (int, error) {
		return s.lifecycle.CloseDueRaffles(ctx)
	})
}

func (s *LifecycleSweeper) runDaily(ctx context.Context, at, name string, sweep func(ctx context.Context) (int, error)) error {
	for {
		wait := untilNext(s.clock.Now(), at)
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}

		flipped, err := sweep(ctx)
		if err != nil {
			slog.Error("lifecycle sweep failed", "sweep", name, "error", err)
			continue
		}
		slog.Info("lifecycle sweep done", "sweep", name, "flipped", flipped)
	}
}

// untilNext returns the duration until the next local occurrence of HH:MM.
// A moment exactly on the mark waits a full day; the caller just ran.
func untilNext(now time.Time, at string) time.Duration {
	t, _ := time.Parse("15:04", at)
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
