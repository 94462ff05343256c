package readstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/infra/db"
	"raffle-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const raffleColumns = `
	id, product_id, prize_product_id, title, description,
	winners_count, max_entries_per_user,
	entry_start_at, entry_end_at, draw_at, status,
	created_at, updated_at`

type RaffleReadStore struct {
	db db.DBTX
}

func NewRaffleReadStore(dbtx db.DBTX) *RaffleReadStore {
	return &RaffleReadStore{db: dbtx}
}

type raffleRow struct {
	ID                uuid.UUID
	ProductID         uuid.UUID
	PrizeProductID    uuid.UUID
	Title             string
	Description       string
	WinnersCount      int
	MaxEntriesPerUser int
	EntryStartAt      time.Time
	EntryEndAt        time.Time
	DrawAt            time.Time
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func scanRaffleRow(row pgx.Row) (*raffleRow, error) {
	var r raffleRow
	err := row.Scan(
		&r.ID, &r.ProductID, &r.PrizeProductID, &r.Title, &r.Description,
		&r.WinnersCount, &r.MaxEntriesPerUser,
		&r.EntryStartAt, &r.EntryEndAt, &r.DrawAt, &r.Status,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RaffleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RaffleView, error) {
	row, err := scanRaffleRow(r.db.QueryRow(ctx, `SELECT `+raffleColumns+` FROM raffles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("raffle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find raffle by ID", err)
	}
	return rowToRaffleView(row), nil
}

func (r *RaffleReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.findEntity(ctx, id, `SELECT `+raffleColumns+` FROM raffles WHERE id = $1`)
}

// FindEntityForUpdate locks the raffle row for the rest of the surrounding
// transaction. Draw execution uses it to serialize concurrent triggers.
func (r *RaffleReadStore) FindEntityForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.findEntity(ctx, id, `SELECT `+raffleColumns+` FROM raffles WHERE id = $1 FOR UPDATE`)
}

func (r *RaffleReadStore) findEntity(ctx context.Context, id uuid.UUID, query string) (*raffle.Raffle, error) {
	row, err := scanRaffleRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("raffle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find raffle", err)
	}
	return rowToRaffleEntity(row), nil
}

// List returns raffles in reverse creation order, optionally filtered by
// status, with keyset pagination on (created_at, id).
func (r *RaffleReadStore) List(ctx context.Context, status *string, limit int32, cursor *queries.Cursor) ([]*queries.RaffleView, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles`
	args := []any{}
	where := ""

	if status != nil {
		args = append(args, *status)
		where = ` WHERE status = $1`
	}
	if cursor != nil {
		args = append(args, cursor.CreatedAt, cursor.ID)
		cond := ` (created_at, id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
		if where == "" {
			where = ` WHERE` + cond
		} else {
			where += ` AND` + cond
		}
	}
	args = append(args, limit)
	query += where + ` ORDER BY created_at DESC, id DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list raffles", err)
	}
	defer rows.Close()

	var views []*queries.RaffleView
	for rows.Next() {
		row, scanErr := scanRaffleRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan raffle row", scanErr)
		}
		views = append(views, rowToRaffleView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate raffle rows", err)
	}
	return views, nil
}

// ListIDsReadyToActivate returns one sweep page of READY raffles whose entry
// window has opened.
func (r *RaffleReadStore) ListIDsReadyToActivate(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	const query = `
		SELECT id FROM raffles
		WHERE status = 'READY' AND entry_start_at <= $1
		ORDER BY entry_start_at
		LIMIT $2`
	return r.listIDs(ctx, query, now, limit)
}

// ListIDsActiveToClose returns one sweep page of ACTIVE raffles whose entry
// window has ended.
func (r *RaffleReadStore) ListIDsActiveToClose(ctx context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	const query = `
		SELECT id FROM raffles
		WHERE status = 'ACTIVE' AND entry_end_at <= $1
		ORDER BY entry_end_at
		LIMIT $2`
	return r.listIDs(ctx, query, now, limit)
}

func (r *RaffleReadStore) listIDs(ctx context.Context, query string, now time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sweep candidates", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan raffle id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate raffle ids", err)
	}
	return ids, nil
}

func rowToRaffleView(row *raffleRow) *queries.RaffleView {
	return &queries.RaffleView{
		ID:                row.ID,
		ProductID:         row.ProductID,
		PrizeProductID:    row.PrizeProductID,
		Title:             row.Title,
		Description:       row.Description,
		WinnersCount:      row.WinnersCount,
		MaxEntriesPerUser: row.MaxEntriesPerUser,
		EntryStartAt:      row.EntryStartAt,
		EntryEndAt:        row.EntryEndAt,
		DrawAt:            row.DrawAt,
		Status:            row.Status,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func rowToRaffleEntity(row *raffleRow) *raffle.Raffle {
	return raffle.ReconstructRaffle(
		row.ID, row.ProductID, row.PrizeProductID,
		row.Title, row.Description,
		row.WinnersCount, row.MaxEntriesPerUser,
		row.EntryStartAt, row.EntryEndAt, row.DrawAt,
		raffle.Status(row.Status),
		row.CreatedAt, row.UpdatedAt,
	)
}
