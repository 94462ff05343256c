package commands

import (
	"context"

	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/queries"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEntryRejected = errs.New("entry rejected")

type EntryCommands interface {
	// IssueTickets allocates `quantity` sequential ticket numbers for the user.
	// All-or-nothing: a failure on any allocation rolls back the whole request,
	// and the numbers consumed before the failure stay burned.
	IssueTickets(ctx context.Context, raffleID, userID uuid.UUID, quantity int) ([]*queries.TicketView, error)
}

type entryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEntryUseCase(uow shared.UnitOfWork, clock clock.Clock) EntryCommands {
	return &entryUseCaseImpl{uow: uow, clock: clock}
}

func (e *entryUseCaseImpl) IssueTickets(
	ctx context.Context,
	raffleID, userID uuid.UUID,
	quantity int,
) ([]*queries.TicketView, error) {
	var issued []*queries.TicketView

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().RaffleByID(ctx, raffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := e.clock.Now()
		existing, err := tx.Reads().UserTicketCount(ctx, raffleID, userID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := entity.ValidateEntry(now, existing, quantity); err != nil {
			return errs.Mark(err, ErrEntryRejected)
		}

		issued = issued[:0]
		for i := 0; i < quantity; i++ {
			number, err := tx.Counters().AllocateNext(ctx, raffleID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			// Re-check the cap only after AllocateNext took the counter row
			// lock. Same-raffle issuance serializes on that lock, so this
			// count includes every competing request that committed before
			// us; counting before the lock would let two requests read the
			// same committed count and both pass.
			existing, err = tx.Reads().UserTicketCount(ctx, raffleID, userID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := entity.ValidateEntry(now, existing, 1); err != nil {
				return errs.Mark(err, ErrEntryRejected)
			}

			t, err := ticket.NewTicket(raffleID, userID, number)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Tickets().Create(ctx, t); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			issued = append(issued, &queries.TicketView{
				ID:           t.ID(),
				RaffleID:     t.RaffleID(),
				UserID:       t.UserID(),
				TicketNumber: t.Number(),
				CreatedAt:    now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}
