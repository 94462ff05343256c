package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketQueries interface {
	ListByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) ([]*TicketView, error)
	CountByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) (int, error)
}

type TicketViewRepo interface {
	ListByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) ([]*TicketView, error)
	CountByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) (int, error)
}

type ticketQueriesImpl struct {
	repo TicketViewRepo
}

func NewTicketQueries(repo TicketViewRepo) TicketQueries {
	return &ticketQueriesImpl{repo: repo}
}

func (q *ticketQueriesImpl) ListByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) ([]*TicketView, error) {
	return q.repo.ListByRaffleAndUser(ctx, raffleID, userID)
}

func (q *ticketQueriesImpl) CountByRaffleAndUser(ctx context.Context, raffleID, userID uuid.UUID) (int, error) {
	return q.repo.CountByRaffleAndUser(ctx, raffleID, userID)
}
