package ticket

import (
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidTicketNumber = errs.New("ticket number must be positive")

// Ticket is one entry in a raffle's append-only ledger. Immutable once created;
// the number is assigned by the allocator and unique per raffle.
type Ticket struct {
	id        uuid.UUID
	raffleID  uuid.UUID
	userID    uuid.UUID
	number    int64
	createdAt time.Time
}

func NewTicket(raffleID, userID uuid.UUID, number int64) (*Ticket, error) {
	if number <= 0 {
		return nil, ErrInvalidTicketNumber
	}
	return &Ticket{
		id:       uuid.New(),
		raffleID: raffleID,
		userID:   userID,
		number:   number,
	}, nil
}

func ReconstructTicket(id, raffleID, userID uuid.UUID, number int64, createdAt time.Time) *Ticket {
	return &Ticket{
		id:        id,
		raffleID:  raffleID,
		userID:    userID,
		number:    number,
		createdAt: createdAt,
	}
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) RaffleID() uuid.UUID  { return t.raffleID }
func (t *Ticket) UserID() uuid.UUID    { return t.userID }
func (t *Ticket) Number() int64        { return t.number }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
