package commands

import (
	"context"

	"raffle-engine/internal/domain/drawing"

	"github.com/google/uuid"
)

// Ports for the external collaborators of the command side. Both trigger
// paths (broker topic and schedule store) converge on the same ExecuteDrawing
// entry point; these ports only cover registration and cancellation.

type DrawingPublisher interface {
	Publish(ctx context.Context, ev drawing.Event) error
}

type ScheduleStore interface {
	Add(ctx context.Context, ev drawing.Event) error
	CancelByRaffle(ctx context.Context, raffleID uuid.UUID) (int, error)
}

// WinnerNotifier is fire-and-forget: a failure after a committed draw is
// logged, never propagated back into the draw transaction.
type WinnerNotifier interface {
	NotifyWinners(ctx context.Context, raffleID uuid.UUID, ticketIDs []uuid.UUID) error
}
