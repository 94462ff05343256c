package shared

import (
	"context"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/domain/winner"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Direct pool-scoped reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Raffles() RaffleRepository
	Counters() CounterRepository
	Tickets() TicketRepository
	Winners() WinnerRepository
	Reads() CommandReads
}

type RaffleRepository interface {
	Create(ctx context.Context, r *raffle.Raffle) error
	UpdateSpec(ctx context.Context, r *raffle.Raffle) error
	// UpdateStatus performs a compare-and-set on the status column and reports
	// whether the row actually moved. False means another writer got there
	// first; callers decide whether that is retryable.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to raffle.Status) (bool, error)
}

// CounterRepository is the single entry point for ticket numbering. The
// implementation must hold an exclusive lock on the per-raffle counter row for
// the duration of the read-modify-write.
type CounterRepository interface {
	AllocateNext(ctx context.Context, raffleID uuid.UUID) (int64, error)
}

type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) error
}

type WinnerRepository interface {
	CreateBatch(ctx context.Context, winners []*winner.Winner) (int, error)
}

type CommandReads interface {
	RaffleByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	// RaffleForUpdate locks the raffle row; only meaningful inside a Tx.
	RaffleForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error)
	UserTicketCount(ctx context.Context, raffleID, userID uuid.UUID) (int, error)
	DistinctEntrantCount(ctx context.Context, raffleID uuid.UUID) (int, error)
	WinnerCount(ctx context.Context, raffleID uuid.UUID) (int, error)
	// CandidateTicketIDs returns tickets of the raffle that do not already
	// belong to a recorded winner.
	CandidateTicketIDs(ctx context.Context, raffleID uuid.UUID) ([]uuid.UUID, error)
}
