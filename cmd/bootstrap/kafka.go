package bootstrap

import (
	"context"

	"raffle-engine/internal/infra/broker"
	"raffle-engine/internal/infra/notify"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/worker"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewDrawingPublisher,
		func(p *broker.DrawingPublisher) commands.DrawingPublisher { return p },
		NewDrawingReader,
		NewWinnerNotifier,
		func(n *notify.KafkaWinnerNotifier) commands.WinnerNotifier { return n },
	),
)

func NewDrawingPublisher(lc fx.Lifecycle, cfg config.Config) *broker.DrawingPublisher {
	publisher := broker.NewDrawingPublisher(cfg.Kafka.Brokers, cfg.Kafka.DrawingTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

// NewDrawingReader joins the draw-worker consumer group. The consumer owns the
// reader and closes it on shutdown.
func NewDrawingReader(cfg config.Config) worker.MessageReader {
	return broker.NewDrawingReader(cfg.Kafka.Brokers, cfg.Kafka.DrawingTopic, cfg.Kafka.ConsumerGroup)
}

func NewWinnerNotifier(lc fx.Lifecycle, cfg config.Config) *notify.KafkaWinnerNotifier {
	notifier := notify.NewKafkaWinnerNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})

	return notifier
}
