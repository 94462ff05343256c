package queries

import (
	"context"

	"github.com/google/uuid"
)

type WinnerQueries interface {
	ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*WinnerView, error)
}

type WinnerViewRepo interface {
	ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*WinnerView, error)
}

type winnerQueriesImpl struct {
	repo WinnerViewRepo
}

func NewWinnerQueries(repo WinnerViewRepo) WinnerQueries {
	return &winnerQueriesImpl{repo: repo}
}

func (q *winnerQueriesImpl) ListByRaffle(ctx context.Context, raffleID uuid.UUID) ([]*WinnerView, error) {
	return q.repo.ListByRaffle(ctx, raffleID)
}
