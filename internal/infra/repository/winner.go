package repository

import (
	"context"

	"raffle-engine/internal/domain/winner"
	"raffle-engine/internal/infra/db"
)

type WinnerRepository struct {
	db db.DBTX
}

func NewWinnerRepository(dbtx db.DBTX) *WinnerRepository {
	return &WinnerRepository{db: dbtx}
}

// CreateBatch inserts winner rows one by one and reports how many landed. The
// unique constraint on raffle_ticket_id backs the "a ticket wins at most once"
// invariant even if a caller ever passes a stale candidate set.
func (r *WinnerRepository) CreateBatch(ctx context.Context, winners []*winner.Winner) (int, error) {
	const query = `
		INSERT INTO raffle_winners (id, raffle_id, raffle_ticket_id, rank, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`

	inserted := 0
	for _, w := range winners {
		_, err := r.db.Exec(ctx, query, w.ID(), w.RaffleID(), w.TicketID(), w.Rank(), string(w.Status()))
		if err != nil {
			return inserted, classifyPgError("failed to create raffle winner", err)
		}
		inserted++
	}
	return inserted, nil
}
