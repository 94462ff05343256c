package broker

import (
	"context"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// DrawingPublisher produces delayed-draw triggers to the drawing-execute
// topic. Messages are keyed by raffle id so per-raffle ordering is preserved
// across partitions.
type DrawingPublisher struct {
	writer *kafka.Writer
}

func NewDrawingPublisher(brokers []string, topic string) *DrawingPublisher {
	return &DrawingPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *DrawingPublisher) Publish(ctx context.Context, ev drawing.Event) error {
	value, err := ev.Marshal()
	if err != nil {
		return errs.Wrap(err, "failed to serialize drawing event")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.RaffleID.String()),
		Value: value,
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish drawing event")
	}
	return nil
}

func (p *DrawingPublisher) Close() error {
	return p.writer.Close()
}
