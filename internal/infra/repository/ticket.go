package repository

import (
	"context"

	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/infra/db"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(dbtx db.DBTX) *TicketRepository {
	return &TicketRepository{db: dbtx}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	const query = `
		INSERT INTO raffle_tickets (id, raffle_id, user_id, ticket_number, created_at)
		VALUES ($1, $2, $3, $4, now())`

	_, err := r.db.Exec(ctx, query, t.ID(), t.RaffleID(), t.UserID(), t.Number())
	if err != nil {
		return classifyPgError("failed to create raffle ticket", err)
	}
	return nil
}
