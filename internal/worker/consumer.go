package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DrawingConsumer executes draw triggers from the drawing-execute topic.
// Offsets are committed only after the draw succeeded or failed terminally,
// so a crash mid-draw redelivers the trigger and idempotency absorbs the
// duplicate.
type DrawingConsumer struct {
	reader   MessageReader
	draws    commands.DrawCommands
	schedule commands.ScheduleStore
	clock    clock.Clock
	backoff  time.Duration
}

func NewDrawingConsumer(
	reader MessageReader,
	draws commands.DrawCommands,
	schedule commands.ScheduleStore,
	clk clock.Clock,
	backoff time.Duration,
) *DrawingConsumer {
	return &DrawingConsumer{
		reader:   reader,
		draws:    draws,
		schedule: schedule,
		clock:    clk,
		backoff:  backoff,
	}
}

func (c *DrawingConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			slog.Error("fetch from drawing topic failed", "error", err)
			continue
		}

		// Retry the message in place until it commits. Fetching past it
		// would let a later commit advance the group offset beyond the
		// failed trigger, and it would never be redelivered.
		for {
			err := c.Handle(ctx, msg)
			if err == nil {
				break
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			slog.Warn("drawing trigger failed, retrying",
				"partition", msg.Partition, "offset", msg.Offset, "error", err)
			if err := sleepCtx(ctx, c.backoff); err != nil {
				return err
			}
		}
	}
}

// Handle processes one trigger message. A trigger that is not yet due is
// parked in the schedule store and committed, so one distant draw cannot
// head-of-line block every later trigger on the partition.
func (c *DrawingConsumer) Handle(ctx context.Context, msg kafka.Message) error {
	ev, err := drawing.UnmarshalEvent(msg.Value)
	if err != nil {
		// Poison message: parked forever if left uncommitted, so drop it.
		slog.Error("dropping malformed drawing trigger",
			"partition", msg.Partition, "offset", msg.Offset, "error", err)
		return c.reader.CommitMessages(ctx, msg)
	}

	if wait := ev.DrawingExecutionTime.Sub(c.clock.Now()); wait > 0 {
		if addErr := c.schedule.Add(ctx, ev); addErr == nil {
			slog.Info("drawing trigger parked until due",
				"raffle_id", ev.RaffleID, "execute_at", ev.DrawingExecutionTime)
			return c.reader.CommitMessages(ctx, msg)
		} else {
			// Schedule store unavailable: wait in place so the trigger
			// still fires with the recovery path down.
			slog.Warn("parking drawing trigger failed, waiting in place",
				"raffle_id", ev.RaffleID, "error", addErr)
		}
		if err := sleepCtx(ctx, wait); err != nil {
			return err
		}
	}

	execErr := c.draws.ExecuteDrawing(ctx, ev.RaffleID)
	switch {
	case execErr == nil:
		slog.Info("drawing executed from broker trigger", "raffle_id", ev.RaffleID)
	case commands.IsTerminalDrawError(execErr):
		slog.Info("drawing trigger rejected", "raffle_id", ev.RaffleID, "reason", execErr.Error())
	default:
		// Surface the failure so Run retries this message before fetching
		// the next one.
		return execErr
	}

	return c.reader.CommitMessages(ctx, msg)
}

func (c *DrawingConsumer) Close() error {
	return c.reader.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
