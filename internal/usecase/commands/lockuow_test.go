//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/domain/winner"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// lockStore models the transaction profile of the Postgres implementation more
// faithfully than memStore: AllocateNext takes the counter row lock and holds
// it until the transaction ends, while count reads see only committed rows plus
// the transaction's own writes. Two transactions can run concurrently up to the
// allocation point, which is exactly where same-user races happen.

type lockStore struct {
	mu       sync.Mutex // guards committed state
	raffles  map[uuid.UUID]raffleRec
	counters map[uuid.UUID]int64
	tickets  []ticketRec

	counterMu sync.Mutex // held from AllocateNext to commit or rollback

	// called at the top of AllocateNext, before the counter lock is taken
	beforeAllocate func()
}

func newLockStore() *lockStore {
	return &lockStore{
		raffles:  make(map[uuid.UUID]raffleRec),
		counters: make(map[uuid.UUID]int64),
	}
}

func (s *lockStore) committedTicketCount(raffleID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tickets {
		if t.raffleID == raffleID {
			n++
		}
	}
	return n
}

func seedLockRaffle(store *lockStore, maxEntries int) uuid.UUID {
	id := uuid.New()
	store.raffles[id] = raffleRec{
		productID:         uuid.New(),
		prizeProductID:    uuid.New(),
		title:             "fixture raffle",
		winnersCount:      3,
		maxEntriesPerUser: maxEntries,
		entryStartAt:      baseTime,
		entryEndAt:        baseTime.Add(7 * 24 * time.Hour),
		drawAt:            baseTime.Add(8 * 24 * time.Hour),
		status:            raffle.StatusActive,
	}
	return id
}

type lockUoW struct {
	store *lockStore
}

func newLockUoW(store *lockStore) shared.UnitOfWork {
	return &lockUoW{store: store}
}

func (u *lockUoW) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &lockTx{store: u.store, allocated: make(map[uuid.UUID]int64)}
	if err := fn(context.Background(), tx); err != nil {
		tx.finish(false)
		return err
	}
	tx.finish(true)
	return nil
}

func (u *lockUoW) Reads() shared.CommandReads {
	return &lockReads{tx: &lockTx{store: u.store}}
}

type lockTx struct {
	store     *lockStore
	holdsLock bool
	allocated map[uuid.UUID]int64
	pending   []ticketRec
}

// finish publishes pending writes on commit, then releases the counter lock.
// The order matters: committed rows must be visible before a waiter on the
// lock gets to read.
func (t *lockTx) finish(commit bool) {
	if commit {
		t.store.mu.Lock()
		t.store.tickets = append(t.store.tickets, t.pending...)
		for id, n := range t.allocated {
			t.store.counters[id] += n
		}
		t.store.mu.Unlock()
	}
	if t.holdsLock {
		t.holdsLock = false
		t.store.counterMu.Unlock()
	}
}

func (t *lockTx) Raffles() shared.RaffleRepository   { return &lockRaffleRepo{store: t.store} }
func (t *lockTx) Counters() shared.CounterRepository { return &lockCounterRepo{tx: t} }
func (t *lockTx) Tickets() shared.TicketRepository   { return &lockTicketRepo{tx: t} }
func (t *lockTx) Winners() shared.WinnerRepository   { return &lockWinnerRepo{} }
func (t *lockTx) Reads() shared.CommandReads         { return &lockReads{tx: t} }

type lockRaffleRepo struct {
	store *lockStore
}

func (r *lockRaffleRepo) Create(_ context.Context, entity *raffle.Raffle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.raffles[entity.ID()] = raffleRec{
		productID:         entity.ProductID(),
		prizeProductID:    entity.PrizeProductID(),
		title:             entity.Title(),
		description:       entity.Description(),
		winnersCount:      entity.WinnersCount(),
		maxEntriesPerUser: entity.MaxEntriesPerUser(),
		entryStartAt:      entity.EntryStartAt(),
		entryEndAt:        entity.EntryEndAt(),
		drawAt:            entity.DrawAt(),
		status:            entity.Status(),
	}
	return nil
}

func (r *lockRaffleRepo) UpdateSpec(_ context.Context, _ *raffle.Raffle) error {
	return nil
}

func (r *lockRaffleRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to raffle.Status) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.raffles[id]
	if !ok || rec.status != from {
		return false, nil
	}
	rec.status = to
	r.store.raffles[id] = rec
	return true, nil
}

type lockCounterRepo struct {
	tx *lockTx
}

func (r *lockCounterRepo) AllocateNext(_ context.Context, raffleID uuid.UUID) (int64, error) {
	if r.tx.store.beforeAllocate != nil {
		r.tx.store.beforeAllocate()
	}
	if !r.tx.holdsLock {
		r.tx.store.counterMu.Lock()
		r.tx.holdsLock = true
	}
	r.tx.store.mu.Lock()
	base := r.tx.store.counters[raffleID]
	r.tx.store.mu.Unlock()
	r.tx.allocated[raffleID]++
	return base + r.tx.allocated[raffleID], nil
}

type lockTicketRepo struct {
	tx *lockTx
}

func (r *lockTicketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	r.tx.pending = append(r.tx.pending, ticketRec{
		id:       t.ID(),
		raffleID: t.RaffleID(),
		userID:   t.UserID(),
		number:   t.Number(),
	})
	return nil
}

type lockWinnerRepo struct{}

func (r *lockWinnerRepo) CreateBatch(_ context.Context, winners []*winner.Winner) (int, error) {
	return len(winners), nil
}

type lockReads struct {
	tx *lockTx
}

func (r *lockReads) RaffleByID(_ context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	r.tx.store.mu.Lock()
	rec, ok := r.tx.store.raffles[id]
	r.tx.store.mu.Unlock()
	if !ok {
		return nil, infra.WrapRepoErr("raffle not found", errNotFound, infra.KindNotFound)
	}
	now := baseTime
	return raffle.ReconstructRaffle(
		id, rec.productID, rec.prizeProductID,
		rec.title, rec.description,
		rec.winnersCount, rec.maxEntriesPerUser,
		rec.entryStartAt, rec.entryEndAt, rec.drawAt,
		rec.status,
		now, now,
	), nil
}

func (r *lockReads) RaffleForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.RaffleByID(ctx, id)
}

// UserTicketCount sees committed rows plus the transaction's own pending
// inserts, never another transaction's uncommitted ones.
func (r *lockReads) UserTicketCount(_ context.Context, raffleID, userID uuid.UUID) (int, error) {
	r.tx.store.mu.Lock()
	n := 0
	for _, t := range r.tx.store.tickets {
		if t.raffleID == raffleID && t.userID == userID {
			n++
		}
	}
	r.tx.store.mu.Unlock()
	for _, t := range r.tx.pending {
		if t.raffleID == raffleID && t.userID == userID {
			n++
		}
	}
	return n, nil
}

func (r *lockReads) DistinctEntrantCount(_ context.Context, raffleID uuid.UUID) (int, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	users := make(map[uuid.UUID]bool)
	for _, t := range r.tx.store.tickets {
		if t.raffleID == raffleID {
			users[t.userID] = true
		}
	}
	return len(users), nil
}

func (r *lockReads) WinnerCount(_ context.Context, _ uuid.UUID) (int, error) {
	return 0, nil
}

func (r *lockReads) CandidateTicketIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
