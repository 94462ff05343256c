package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

// winnerNotification is the fan-out payload for the notification collaborator.
type winnerNotification struct {
	RaffleID  uuid.UUID   `json:"raffleId"`
	TicketIDs []uuid.UUID `json:"raffleTicketIds"`
	DrawnAt   time.Time   `json:"drawnAt"`
}

// KafkaWinnerNotifier publishes winner notifications after a successful draw.
// The breaker trips open after repeated broker failures so post-draw
// notification attempts degrade to an immediate logged failure instead of
// blocking on a dead broker. Failures here are always fire-and-forget: the
// draw has already committed.
type KafkaWinnerNotifier struct {
	writer  *kafka.Writer
	breaker *gobreaker.CircuitBreaker
}

func NewKafkaWinnerNotifier(brokers []string, topic string) *KafkaWinnerNotifier {
	settings := gobreaker.Settings{
		Name:    "winner-notify",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("notifier circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	return &KafkaWinnerNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (n *KafkaWinnerNotifier) NotifyWinners(ctx context.Context, raffleID uuid.UUID, ticketIDs []uuid.UUID) error {
	payload, err := json.Marshal(winnerNotification{
		RaffleID:  raffleID,
		TicketIDs: ticketIDs,
		DrawnAt:   time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to serialize winner notification")
	}

	_, err = n.breaker.Execute(func() (any, error) {
		return nil, n.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(raffleID.String()),
			Value: payload,
		})
	})
	if err != nil {
		return errs.Wrap(err, "failed to publish winner notification")
	}
	return nil
}

func (n *KafkaWinnerNotifier) Close() error {
	return n.writer.Close()
}
