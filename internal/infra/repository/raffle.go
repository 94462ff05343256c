package repository

import (
	"context"
	"errors"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func classifyPgError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

type RaffleRepository struct {
	db db.DBTX
}

func NewRaffleRepository(dbtx db.DBTX) *RaffleRepository {
	return &RaffleRepository{db: dbtx}
}

func (r *RaffleRepository) Create(ctx context.Context, ra *raffle.Raffle) error {
	const query = `
		INSERT INTO raffles (
			id, product_id, prize_product_id, title, description,
			winners_count, max_entries_per_user,
			entry_start_at, entry_end_at, draw_at, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`

	_, err := r.db.Exec(ctx, query,
		ra.ID(), ra.ProductID(), ra.PrizeProductID(), ra.Title(), ra.Description(),
		ra.WinnersCount(), ra.MaxEntriesPerUser(),
		ra.EntryStartAt(), ra.EntryEndAt(), ra.DrawAt(), ra.Status().String(),
	)
	if err != nil {
		return classifyPgError("failed to create raffle", err)
	}
	return nil
}

// UpdateSpec persists the editable fields. The status predicate keeps a
// concurrently published raffle from being rewritten by a stale admin edit.
func (r *RaffleRepository) UpdateSpec(ctx context.Context, ra *raffle.Raffle) error {
	const query = `
		UPDATE raffles SET
			title = $2, description = $3,
			winners_count = $4, max_entries_per_user = $5,
			entry_start_at = $6, entry_end_at = $7, draw_at = $8,
			updated_at = now()
		WHERE id = $1 AND status = $9`

	tag, err := r.db.Exec(ctx, query,
		ra.ID(), ra.Title(), ra.Description(),
		ra.WinnersCount(), ra.MaxEntriesPerUser(),
		ra.EntryStartAt(), ra.EntryEndAt(), ra.DrawAt(),
		raffle.StatusDraft.String(),
	)
	if err != nil {
		return classifyPgError("failed to update raffle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("raffle not updatable", nil, infra.KindConflict)
	}
	return nil
}

func (r *RaffleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to raffle.Status) (bool, error) {
	const query = `
		UPDATE raffles SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update raffle status", err)
	}
	return tag.RowsAffected() > 0, nil
}
