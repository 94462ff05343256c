package broker

import (
	"github.com/segmentio/kafka-go"
)

// NewDrawingReader builds a consumer-group reader for the drawing-execute
// topic. Offsets are committed manually, only after the draw has been
// executed or rejected as terminal; anything else stays uncommitted and is
// redelivered.
func NewDrawingReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
