package repository

import (
	"context"

	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/db"

	"github.com/google/uuid"
)

// CounterRepository owns ticket numbering. AllocateNext must run inside the
// issuance transaction: the FOR UPDATE lock is held until that transaction
// commits or rolls back, which is what makes numbers gap-free under load
// (aborts skip a number; duplicates are impossible).
type CounterRepository struct {
	db db.DBTX
}

func NewCounterRepository(dbtx db.DBTX) *CounterRepository {
	return &CounterRepository{db: dbtx}
}

func (r *CounterRepository) AllocateNext(ctx context.Context, raffleID uuid.UUID) (int64, error) {
	const initQuery = `
		INSERT INTO raffle_ticket_counters (raffle_id, current_value)
		VALUES ($1, 0)
		ON CONFLICT (raffle_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, initQuery, raffleID); err != nil {
		return 0, classifyPgError("failed to initialize ticket counter", err)
	}

	const lockQuery = `
		SELECT current_value FROM raffle_ticket_counters
		WHERE raffle_id = $1
		FOR UPDATE`

	var current int64
	if err := r.db.QueryRow(ctx, lockQuery, raffleID).Scan(&current); err != nil {
		return 0, infra.WrapRepoErr("failed to lock ticket counter", err)
	}

	next := current + 1

	const updateQuery = `
		UPDATE raffle_ticket_counters SET current_value = $2
		WHERE raffle_id = $1`

	if _, err := r.db.Exec(ctx, updateQuery, raffleID, next); err != nil {
		return 0, infra.WrapRepoErr("failed to advance ticket counter", err)
	}

	return next, nil
}
