package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// SweepReads pages through raffles due for a lifecycle flip. Backed by the
// read store over the pool; sweep pages deliberately run outside any
// transaction so a huge backlog never holds locks.
type SweepReads interface {
	ListIDsReadyToActivate(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
	ListIDsActiveToClose(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error)
}

type LifecycleCommands interface {
	// ActivateDueRaffles flips READY raffles whose entry window has opened to
	// ACTIVE. Returns how many rows actually moved.
	ActivateDueRaffles(ctx context.Context) (int, error)
	// CloseDueRaffles flips ACTIVE raffles whose entry window has ended to
	// CLOSED. Returns how many rows actually moved.
	CloseDueRaffles(ctx context.Context) (int, error)
}

type lifecycleUseCaseImpl struct {
	uow      shared.UnitOfWork
	reads    SweepReads
	clock    clock.Clock
	pageSize int32
}

func NewLifecycleUseCase(uow shared.UnitOfWork, reads SweepReads, clock clock.Clock, pageSize int32) LifecycleCommands {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &lifecycleUseCaseImpl{
		uow:      uow,
		reads:    reads,
		clock:    clock,
		pageSize: pageSize,
	}
}

func (l *lifecycleUseCaseImpl) ActivateDueRaffles(ctx context.Context) (int, error) {
	return l.sweep(ctx, "activate", l.reads.ListIDsReadyToActivate, raffle.StatusReady, raffle.StatusActive)
}

func (l *lifecycleUseCaseImpl) CloseDueRaffles(ctx context.Context) (int, error) {
	return l.sweep(ctx, "close", l.reads.ListIDsActiveToClose, raffle.StatusActive, raffle.StatusClosed)
}

// sweep pages through due raffles and flips each with its own compare-and-set.
// One bad row never stops the page: failures are logged and the sweep moves
// on. A lost CAS means someone else got there first, which is fine.
func (l *lifecycleUseCaseImpl) sweep(
	ctx context.Context,
	name string,
	list func(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error),
	from, to raffle.Status,
) (int, error) {
	now := l.clock.Now()
	flipped := 0

	for {
		ids, err := list(ctx, now, l.pageSize)
		if err != nil {
			return flipped, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(ids) == 0 {
			return flipped, nil
		}

		progressed := 0
		for _, id := range ids {
			moved, err := l.flipOne(ctx, id, from, to)
			if err != nil {
				slog.Error("sweep item failed", "sweep", name, "raffle_id", id, "error", err)
				continue
			}
			if moved {
				flipped++
				progressed++
			}
		}

		// Every row in the page stayed put (lost races or persistent
		// failures); looping again would reread the same rows forever.
		if progressed == 0 {
			return flipped, nil
		}
		if len(ids) < int(l.pageSize) {
			return flipped, nil
		}
	}
}

func (l *lifecycleUseCaseImpl) flipOne(ctx context.Context, id uuid.UUID, from, to raffle.Status) (bool, error) {
	var moved bool
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		moved, err = tx.Raffles().UpdateStatus(ctx, id, from, to)
		return err
	})
	return moved, err
}
