package readstore

import (
	"context"

	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/db"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

func (r *TicketReadStore) CountByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) (int, error) {
	const query = `SELECT count(*) FROM raffle_tickets WHERE raffle_id = $1 AND user_id = $2`

	var count int
	if err := r.db.QueryRow(ctx, query, raffleID, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count user tickets", err)
	}
	return count, nil
}

func (r *TicketReadStore) CountDistinctEntrants(ctx context.Context, raffleID uuid.UUID) (int, error) {
	const query = `SELECT count(DISTINCT user_id) FROM raffle_tickets WHERE raffle_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, raffleID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count distinct entrants", err)
	}
	return count, nil
}

// CandidateTicketIDs returns tickets eligible for selection: every ticket of
// the raffle that is not already referenced by a winner row.
func (r *TicketReadStore) CandidateTicketIDs(ctx context.Context, raffleID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT t.id FROM raffle_tickets t
		WHERE t.raffle_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM raffle_winners w WHERE w.raffle_ticket_id = t.id
		  )
		ORDER BY t.ticket_number`

	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate tickets", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate ticket id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate tickets", err)
	}
	return ids, nil
}

func (r *TicketReadStore) ListByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) ([]*queries.TicketView, error) {
	const query = `
		SELECT id, raffle_id, user_id, ticket_number, created_at
		FROM raffle_tickets
		WHERE raffle_id = $1 AND user_id = $2
		ORDER BY ticket_number`

	rows, err := r.db.Query(ctx, query, raffleID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user tickets", err)
	}
	defer rows.Close()

	var views []*queries.TicketView
	for rows.Next() {
		var v queries.TicketView
		if err := rows.Scan(&v.ID, &v.RaffleID, &v.UserID, &v.TicketNumber, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket rows", err)
	}
	return views, nil
}
