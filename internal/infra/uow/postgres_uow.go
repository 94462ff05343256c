package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/infra/db"
	"raffle-engine/internal/infra/readstore"
	"raffle-engine/internal/infra/repository"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// per-raffle counter row lock carries the stronger guarantee where needed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	raffleRepo   shared.RaffleRepository
	counterRepo  shared.CounterRepository
	ticketRepo   shared.TicketRepository
	winnerRepo   shared.WinnerRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Raffles() shared.RaffleRepository {
	if t.raffleRepo == nil {
		t.raffleRepo = repository.NewRaffleRepository(t.dbtx)
	}
	return t.raffleRepo
}

func (t *pgTx) Counters() shared.CounterRepository {
	if t.counterRepo == nil {
		t.counterRepo = repository.NewCounterRepository(t.dbtx)
	}
	return t.counterRepo
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.dbtx)
	}
	return t.ticketRepo
}

func (t *pgTx) Winners() shared.WinnerRepository {
	if t.winnerRepo == nil {
		t.winnerRepo = repository.NewWinnerRepository(t.dbtx)
	}
	return t.winnerRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	raffleStore *readstore.RaffleReadStore
	ticketStore *readstore.TicketReadStore
	winnerStore *readstore.WinnerReadStore
}

func (r *commandReads) raffles() *readstore.RaffleReadStore {
	if r.raffleStore == nil {
		r.raffleStore = readstore.NewRaffleReadStore(r.dbtx)
	}
	return r.raffleStore
}

func (r *commandReads) tickets() *readstore.TicketReadStore {
	if r.ticketStore == nil {
		r.ticketStore = readstore.NewTicketReadStore(r.dbtx)
	}
	return r.ticketStore
}

func (r *commandReads) winners() *readstore.WinnerReadStore {
	if r.winnerStore == nil {
		r.winnerStore = readstore.NewWinnerReadStore(r.dbtx)
	}
	return r.winnerStore
}

func (r *commandReads) RaffleByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.raffles().FindEntityByID(ctx, id)
}

func (r *commandReads) RaffleForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.raffles().FindEntityForUpdate(ctx, id)
}

func (r *commandReads) UserTicketCount(ctx context.Context, raffleID, userID uuid.UUID) (int, error) {
	return r.tickets().CountByRaffleAndUser(ctx, raffleID, userID)
}

func (r *commandReads) DistinctEntrantCount(ctx context.Context, raffleID uuid.UUID) (int, error) {
	return r.tickets().CountDistinctEntrants(ctx, raffleID)
}

func (r *commandReads) WinnerCount(ctx context.Context, raffleID uuid.UUID) (int, error) {
	return r.winners().CountByRaffle(ctx, raffleID)
}

func (r *commandReads) CandidateTicketIDs(ctx context.Context, raffleID uuid.UUID) ([]uuid.UUID, error) {
	return r.tickets().CandidateTicketIDs(ctx, raffleID)
}
