package readstore

import (
	"context"

	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/db"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type WinnerReadStore struct {
	db db.DBTX
}

func NewWinnerReadStore(dbtx db.DBTX) *WinnerReadStore {
	return &WinnerReadStore{db: dbtx}
}

func (r *WinnerReadStore) CountByRaffle(ctx context.Context, raffleID uuid.UUID) (int, error) {
	const query = `SELECT count(*) FROM raffle_winners WHERE raffle_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, raffleID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count winners", err)
	}
	return count, nil
}

func (r *WinnerReadStore) ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*queries.WinnerView, error) {
	const query = `
		SELECT w.id, w.raffle_id, w.raffle_ticket_id, t.ticket_number, t.user_id,
		       w.rank, w.status, w.created_at
		FROM raffle_winners w
		JOIN raffle_tickets t ON t.id = w.raffle_ticket_id
		WHERE w.raffle_id = $1
		ORDER BY w.rank`

	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list winners", err)
	}
	defer rows.Close()

	var views []*queries.WinnerView
	for rows.Next() {
		var v queries.WinnerView
		if err := rows.Scan(&v.ID, &v.RaffleID, &v.TicketID, &v.TicketNumber, &v.UserID, &v.Rank, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan winner row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate winner rows", err)
	}
	return views, nil
}
