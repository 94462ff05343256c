package winner

import (
	"time"

	"raffle-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRank   = errs.New("winner rank must be positive")
	ErrInvalidStatus = errs.New("invalid winner status")
)

// Status tracks what happened to a winning seat after the draw.
type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusPurchased Status = "PURCHASED"
	StatusExpired   Status = "EXPIRED"
	StatusForfeited Status = "FORFEITED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPurchased, StatusExpired, StatusForfeited:
		return true
	}
	return false
}

// Winner links one winning ticket to its draw rank. Created only by draw
// execution; a ticket can win at most once.
type Winner struct {
	id        uuid.UUID
	raffleID  uuid.UUID
	ticketID  uuid.UUID
	rank      int
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewWinner(raffleID, ticketID uuid.UUID, rank int) (*Winner, error) {
	if rank <= 0 {
		return nil, ErrInvalidRank
	}
	return &Winner{
		id:       uuid.New(),
		raffleID: raffleID,
		ticketID: ticketID,
		rank:     rank,
		status:   StatusReserved,
	}, nil
}

func ReconstructWinner(id, raffleID, ticketID uuid.UUID, rank int, status Status, createdAt, updatedAt time.Time) *Winner {
	return &Winner{
		id:        id,
		raffleID:  raffleID,
		ticketID:  ticketID,
		rank:      rank,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (w *Winner) MarkPurchased() error { return w.transition(StatusPurchased) }
func (w *Winner) MarkExpired() error   { return w.transition(StatusExpired) }
func (w *Winner) MarkForfeited() error { return w.transition(StatusForfeited) }

func (w *Winner) transition(next Status) error {
	if w.status != StatusReserved {
		return ErrInvalidStatus
	}
	w.status = next
	return nil
}

func (w *Winner) ID() uuid.UUID        { return w.id }
func (w *Winner) RaffleID() uuid.UUID  { return w.raffleID }
func (w *Winner) TicketID() uuid.UUID  { return w.ticketID }
func (w *Winner) Rank() int            { return w.rank }
func (w *Winner) Status() Status       { return w.status }
func (w *Winner) CreatedAt() time.Time { return w.createdAt }
func (w *Winner) UpdatedAt() time.Time { return w.updatedAt }
