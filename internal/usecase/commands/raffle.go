package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRaffleNotFound          = errs.New("raffle not found")
	ErrRaffleConflict          = errs.New("raffle was modified concurrently")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrScheduleRegistration    = errs.New("failed to register drawing schedule")
)

type RaffleSpec struct {
	ProductID         uuid.UUID
	PrizeProductID    uuid.UUID
	Title             string
	Description       string
	WinnersCount      int
	MaxEntriesPerUser int
	EntryStartAt      time.Time
	EntryEndAt        time.Time
	DrawAt            time.Time
}

type RaffleCommands interface {
	CreateRaffle(ctx context.Context, spec RaffleSpec) (uuid.UUID, error)
	UpdateRaffle(ctx context.Context, id uuid.UUID, spec RaffleSpec) error
	// PublishRaffle moves a draft to READY and registers the delayed draw
	// trigger on both paths. Registration failures on one path are tolerated
	// as long as the other path succeeded. Publishing an already READY or
	// ACTIVE raffle only re-registers the trigger, so a raffle whose
	// registration failed on both paths can be rescued by calling it again.
	PublishRaffle(ctx context.Context, id uuid.UUID) error
	CancelRaffle(ctx context.Context, id uuid.UUID) error
}

type raffleUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher DrawingPublisher
	schedule  ScheduleStore
	clock     clock.Clock
}

func NewRaffleUseCase(
	uow shared.UnitOfWork,
	publisher DrawingPublisher,
	schedule ScheduleStore,
	clock clock.Clock,
) RaffleCommands {
	return &raffleUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		schedule:  schedule,
		clock:     clock,
	}
}

func (r *raffleUseCaseImpl) CreateRaffle(ctx context.Context, spec RaffleSpec) (uuid.UUID, error) {
	entity, err := raffle.NewRaffle(
		spec.ProductID, spec.PrizeProductID,
		spec.Title, spec.Description,
		spec.WinnersCount, spec.MaxEntriesPerUser,
		spec.EntryStartAt, spec.EntryEndAt, spec.DrawAt,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Raffles().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (r *raffleUseCaseImpl) UpdateRaffle(ctx context.Context, id uuid.UUID, spec RaffleSpec) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().RaffleForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entity.UpdateSpec(
			spec.Title, spec.Description,
			spec.WinnersCount, spec.MaxEntriesPerUser,
			spec.EntryStartAt, spec.EntryEndAt, spec.DrawAt,
		); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Raffles().UpdateSpec(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRaffleConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *raffleUseCaseImpl) PublishRaffle(ctx context.Context, id uuid.UUID) error {
	var drawAt time.Time

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().RaffleForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Already published: skip the flip and fall through to registration,
		// so a trigger lost to a registration failure can be re-registered.
		switch entity.Status() {
		case raffle.StatusReady, raffle.StatusActive:
			drawAt = entity.DrawAt()
			return nil
		}

		if err := entity.Publish(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		moved, err := tx.Raffles().UpdateStatus(ctx, id, raffle.StatusDraft, raffle.StatusReady)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !moved {
			return ErrRaffleConflict
		}

		drawAt = entity.DrawAt()
		return nil
	})
	if err != nil {
		return err
	}

	return r.registerSchedule(ctx, id, drawAt)
}

// registerSchedule fans the trigger out to both delivery paths after the
// status flip committed. Both failing is an error; one surviving path still
// gets the draw executed, so a single failure is only logged.
func (r *raffleUseCaseImpl) registerSchedule(ctx context.Context, raffleID uuid.UUID, drawAt time.Time) error {
	ev := drawing.NewEvent(raffleID, drawAt, r.clock.Now())

	pubErr := r.publisher.Publish(ctx, ev)
	if pubErr != nil {
		slog.Warn("drawing trigger publish failed", "raffle_id", raffleID, "error", pubErr)
	}
	schedErr := r.schedule.Add(ctx, ev)
	if schedErr != nil {
		slog.Warn("drawing schedule add failed", "raffle_id", raffleID, "error", schedErr)
	}

	if pubErr != nil && schedErr != nil {
		return errs.Mark(schedErr, ErrScheduleRegistration)
	}
	return nil
}

func (r *raffleUseCaseImpl) CancelRaffle(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().RaffleForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRaffleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		from := entity.Status()
		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		moved, err := tx.Raffles().UpdateStatus(ctx, id, from, raffle.StatusCancelled)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !moved {
			return ErrRaffleConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Best effort: a schedule entry left behind is harmless because draw
	// execution rejects cancelled raffles anyway.
	if removed, err := r.schedule.CancelByRaffle(ctx, id); err != nil {
		slog.Warn("drawing schedule cancel failed", "raffle_id", id, "error", err)
	} else if removed > 0 {
		slog.Info("drawing schedule cancelled", "raffle_id", id, "removed", removed)
	}
	return nil
}
