package queries

import (
	"context"

	"github.com/google/uuid"
)

type RaffleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RaffleView, error)
	// List pages raffles newest first. The returned cursor is nil when the
	// page was not full.
	List(ctx context.Context, status *string, limit int, after *Cursor) ([]*RaffleView, *Cursor, error)
}

type RaffleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RaffleView, error)
	List(ctx context.Context, status *string, limit int32, cursor *Cursor) ([]*RaffleView, error)
}

type raffleQueriesImpl struct {
	repo RaffleViewRepo
}

func NewRaffleQueries(repo RaffleViewRepo) RaffleQueries {
	return &raffleQueriesImpl{repo: repo}
}

func (q *raffleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RaffleView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *raffleQueriesImpl) List(ctx context.Context, status *string, limit int, after *Cursor) ([]*RaffleView, *Cursor, error) {
	limit = ValidateLimit(limit)
	views, err := q.repo.List(ctx, status, int32(limit), after)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(views) == limit {
		last := views[len(views)-1]
		next = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return views, next, nil
}
