package components

import (
	"context"
	"errors"
	"log/slog"

	"raffle-engine/internal/infra/timestore"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDrawingConsumer,
		NewSchedulePoller,
		NewLifecycleSweeper,
	),
	fx.Invoke(registerWorkers),
)

func NewDrawingConsumer(
	reader worker.MessageReader,
	draws commands.DrawCommands,
	schedule commands.ScheduleStore,
	clk clock.Clock,
	cfg config.Config,
) *worker.DrawingConsumer {
	return worker.NewDrawingConsumer(reader, draws, schedule, clk, cfg.Kafka.RetryBackoff)
}

func NewSchedulePoller(store *timestore.RedisScheduleStore, draws commands.DrawCommands, clk clock.Clock, cfg config.Config) *worker.SchedulePoller {
	return worker.NewSchedulePoller(store, draws, clk, cfg.Poller.Interval)
}

func NewLifecycleSweeper(lifecycle commands.LifecycleCommands, clk clock.Clock, cfg config.Config) (*worker.LifecycleSweeper, error) {
	return worker.NewLifecycleSweeper(lifecycle, clk, cfg.Sweeper.ActivateAt, cfg.Sweeper.CloseAt)
}

// registerWorkers attaches the background loops to the fx lifecycle: started
// on OnStart, cancelled together on OnStop.
func registerWorkers(
	lc fx.Lifecycle,
	consumer *worker.DrawingConsumer,
	poller *worker.SchedulePoller,
	sweeper *worker.LifecycleSweeper,
) {
	var cancel context.CancelFunc

	run := func(name string, fn func(ctx context.Context) error, ctx context.Context) {
		go func() {
			if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("worker stopped", "worker", name, "error", err)
			}
		}()
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			run("drawing-consumer", consumer.Run, ctx)
			run("schedule-poller", poller.Run, ctx)
			run("sweep-activation", sweeper.RunActivation, ctx)
			run("sweep-close", sweeper.RunClose, ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			return consumer.Close()
		},
	})
}
