package commands

import (
	"context"
	"errors"
	"log/slog"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/winner"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoEntrants   = errs.New("raffle has no entrants")
	ErrNotDrawable  = errs.New("raffle is not drawable")
	ErrDrawRejected = errs.New("draw rejected")
)

type DrawCommands interface {
	// ExecuteDrawing selects winners and flips the raffle to DRAWN in one
	// transaction. Safe to call any number of times for the same raffle: an
	// already-drawn raffle is a silent no-op success.
	ExecuteDrawing(ctx context.Context, raffleID uuid.UUID) error
}

type drawUseCaseImpl struct {
	uow      shared.UnitOfWork
	sampler  drawing.Sampler
	notifier WinnerNotifier
	clock    clock.Clock
}

func NewDrawUseCase(
	uow shared.UnitOfWork,
	sampler drawing.Sampler,
	notifier WinnerNotifier,
	clock clock.Clock,
) DrawCommands {
	return &drawUseCaseImpl{
		uow:      uow,
		sampler:  sampler,
		notifier: notifier,
		clock:    clock,
	}
}

// IsTerminalDrawError reports whether retrying the same trigger can ever
// succeed. Consumers commit the message on terminal errors and leave it for
// redelivery otherwise.
func IsTerminalDrawError(err error) bool {
	return errors.Is(err, ErrNoEntrants) ||
		errors.Is(err, ErrNotDrawable) ||
		errors.Is(err, ErrRaffleNotFound)
}

func (d *drawUseCaseImpl) ExecuteDrawing(ctx context.Context, raffleID uuid.UUID) error {
	var winnerTicketIDs []uuid.UUID
	alreadyDone := false

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The row lock serializes concurrent triggers for the same raffle;
		// the loser of the race sees DRAWN and no-ops.
		entity, err := tx.Reads().RaffleForUpdate(ctx, raffleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.Status() == raffle.StatusDrawn {
			alreadyDone = true
			return nil
		}
		if err := entity.ValidateDrawable(d.clock.Now()); err != nil {
			if errors.Is(err, raffle.ErrAlreadyTerminal) {
				return ErrNotDrawable
			}
			return errs.Mark(err, ErrDrawRejected)
		}

		entrants, err := tx.Reads().DistinctEntrantCount(ctx, raffleID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entrants == 0 {
			return ErrNoEntrants
		}

		drawn, err := tx.Reads().WinnerCount(ctx, raffleID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		remaining := entity.WinnersCount() - drawn
		if remaining <= 0 {
			// Winners exist but the status flip was lost; repair it.
			slog.Info("winners already recorded, repairing status",
				"raffle_id", raffleID, "drawn", drawn)
			return d.markDrawn(ctx, tx, entity)
		}

		candidates, err := tx.Reads().CandidateTicketIDs(ctx, raffleID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		selected := d.sampler.Sample(candidates, remaining)
		if len(selected) < remaining {
			slog.Warn("candidate pool smaller than winners count",
				"raffle_id", raffleID, "wanted", remaining, "selected", len(selected))
		}

		winners := make([]*winner.Winner, 0, len(selected))
		for i, ticketID := range selected {
			w, err := winner.NewWinner(raffleID, ticketID, drawn+i+1)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			winners = append(winners, w)
		}
		if _, err := tx.Winners().CreateBatch(ctx, winners); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		winnerTicketIDs = selected
		return d.markDrawn(ctx, tx, entity)
	})
	if err != nil {
		return err
	}

	if alreadyDone || len(winnerTicketIDs) == 0 {
		return nil
	}

	// Post-commit, fire-and-forget. The draw stands even if notification
	// delivery fails.
	if err := d.notifier.NotifyWinners(ctx, raffleID, winnerTicketIDs); err != nil {
		slog.Error("winner notification failed", "raffle_id", raffleID, "error", err)
	}
	return nil
}

func (d *drawUseCaseImpl) markDrawn(ctx context.Context, tx shared.Tx, entity *raffle.Raffle) error {
	moved, err := tx.Raffles().UpdateStatus(ctx, entity.ID(), entity.Status(), raffle.StatusDrawn)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !moved {
		return ErrRaffleConflict
	}
	return nil
}
