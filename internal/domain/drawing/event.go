package drawing

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the delayed-draw trigger payload. It is transient: carried on the
// broker topic and in the schedule store, never persisted as a domain record.
// Execution against it must be idempotent because delivery is at-least-once.
type Event struct {
	RaffleID             uuid.UUID `json:"raffleId"`
	DrawingExecutionTime time.Time `json:"drawingExecutionTime"`
	RegisteredAt         time.Time `json:"registeredAt"`
}

func NewEvent(raffleID uuid.UUID, executeAt, registeredAt time.Time) Event {
	return Event{
		RaffleID:             raffleID,
		DrawingExecutionTime: executeAt.UTC(),
		RegisteredAt:         registeredAt.UTC(),
	}
}

// Marshal produces the canonical wire form (ISO-8601 timestamps). The same
// bytes serve as broker message value and as sorted-set member, so Remove can
// address the exact member that was added.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Score is the sorted-set score: execution time as epoch milliseconds.
func (e Event) Score() int64 {
	return e.DrawingExecutionTime.UnixMilli()
}
