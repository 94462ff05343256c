//go:build unit

package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"raffle-engine/internal/domain/raffle"
	"raffle-engine/internal/domain/ticket"
	"raffle-engine/internal/domain/winner"
	"raffle-engine/internal/infra"
	"raffle-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory UnitOfWork fake. A store-wide mutex held for the whole Within
// call stands in for the row locks of the real implementation, and a snapshot
// taken at transaction start gives all-or-nothing semantics on error.

type raffleRec struct {
	productID, prizeProductID uuid.UUID
	title, description        string
	winnersCount              int
	maxEntriesPerUser         int
	entryStartAt              time.Time
	entryEndAt                time.Time
	drawAt                    time.Time
	status                    raffle.Status
}

type ticketRec struct {
	id       uuid.UUID
	raffleID uuid.UUID
	userID   uuid.UUID
	number   int64
}

type winnerRec struct {
	id       uuid.UUID
	raffleID uuid.UUID
	ticketID uuid.UUID
	rank     int
}

type memStore struct {
	mu       sync.Mutex
	raffles  map[uuid.UUID]raffleRec
	counters map[uuid.UUID]int64
	tickets  []ticketRec
	winners  []winnerRec

	// fault injection for status CAS, keyed by raffle id
	statusErr map[uuid.UUID]error
}

func newMemStore() *memStore {
	return &memStore{
		raffles:   make(map[uuid.UUID]raffleRec),
		counters:  make(map[uuid.UUID]int64),
		statusErr: make(map[uuid.UUID]error),
	}
}

func (s *memStore) putRaffle(r *raffle.Raffle) {
	s.raffles[r.ID()] = raffleRec{
		productID:         r.ProductID(),
		prizeProductID:    r.PrizeProductID(),
		title:             r.Title(),
		description:       r.Description(),
		winnersCount:      r.WinnersCount(),
		maxEntriesPerUser: r.MaxEntriesPerUser(),
		entryStartAt:      r.EntryStartAt(),
		entryEndAt:        r.EntryEndAt(),
		drawAt:            r.DrawAt(),
		status:            r.Status(),
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.raffles {
		c.raffles[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	c.tickets = append([]ticketRec(nil), s.tickets...)
	c.winners = append([]winnerRec(nil), s.winners...)
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.raffles = snap.raffles
	s.counters = snap.counters
	s.tickets = snap.tickets
	s.winners = snap.winners
}

func (s *memStore) status(id uuid.UUID) raffle.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raffles[id].status
}

func (s *memStore) ticketCount(raffleID uuid.UUID) int {
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

func (s *memStore) winnerRecs(raffleID uuid.UUID) []winnerRec {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []winnerRec
	for _, w := range s.winners {
		if w.raffleID == raffleID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	return out
}

type memUoW struct {
	store *memStore
}

func newMemUoW(store *memStore) shared.UnitOfWork {
	return &memUoW{store: store}
}

func (u *memUoW) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snap := u.store.snapshot()
	if err := fn(context.Background(), &memTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *memUoW) Reads() shared.CommandReads {
	return &lockedReads{store: u.store}
}

type memTx struct {
	store *memStore
}

func (t *memTx) Raffles() shared.RaffleRepository   { return &memRaffleRepo{store: t.store} }
func (t *memTx) Counters() shared.CounterRepository { return &memCounterRepo{store: t.store} }
func (t *memTx) Tickets() shared.TicketRepository   { return &memTicketRepo{store: t.store} }
func (t *memTx) Winners() shared.WinnerRepository   { return &memWinnerRepo{store: t.store} }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{store: t.store} }

type memRaffleRepo struct {
	store *memStore
}

func (r *memRaffleRepo) Create(_ context.Context, entity *raffle.Raffle) error {
	r.store.putRaffle(entity)
	return nil
}

func (r *memRaffleRepo) UpdateSpec(_ context.Context, entity *raffle.Raffle) error {
	rec, ok := r.store.raffles[entity.ID()]
	if !ok {
		return infra.WrapRepoErr("raffle not found", errNotFound, infra.KindNotFound)
	}
	if rec.status != raffle.StatusDraft {
		return infra.WrapRepoErr("raffle no longer draft", errConflict, infra.KindConflict)
	}
	r.store.putRaffle(entity)
	return nil
}

func (r *memRaffleRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to raffle.Status) (bool, error) {
	if err := r.store.statusErr[id]; err != nil {
		return false, err
	}
	rec, ok := r.store.raffles[id]
	if !ok || rec.status != from {
		return false, nil
	}
	rec.status = to
	r.store.raffles[id] = rec
	return true, nil
}

type memCounterRepo struct {
	store *memStore
}

func (r *memCounterRepo) AllocateNext(_ context.Context, raffleID uuid.UUID) (int64, error) {
	next := r.store.counters[raffleID] + 1
	r.store.counters[raffleID] = next
	return next, nil
}

type memTicketRepo struct {
	store *memStore
}

func (r *memTicketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	r.store.tickets = append(r.store.tickets, ticketRec{
		id:       t.ID(),
		raffleID: t.RaffleID(),
		userID:   t.UserID(),
		number:   t.Number(),
	})
	return nil
}

type memWinnerRepo struct {
	store *memStore
}

func (r *memWinnerRepo) CreateBatch(_ context.Context, winners []*winner.Winner) (int, error) {
	for _, w := range winners {
		r.store.winners = append(r.store.winners, winnerRec{
			id:       w.ID(),
			raffleID: w.RaffleID(),
			ticketID: w.TicketID(),
			rank:     w.Rank(),
		})
	}
	return len(winners), nil
}

type memReads struct {
	store *memStore
}

func (r *memReads) RaffleByID(_ context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	rec, ok := r.store.raffles[id]
	if !ok {
		return nil, infra.WrapRepoErr("raffle not found", errNotFound, infra.KindNotFound)
	}
	now := time.Unix(0, 0)
	return raffle.ReconstructRaffle(
		id, rec.productID, rec.prizeProductID,
		rec.title, rec.description,
		rec.winnersCount, rec.maxEntriesPerUser,
		rec.entryStartAt, rec.entryEndAt, rec.drawAt,
		rec.status,
		now, now,
	), nil
}

func (r *memReads) RaffleForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.RaffleByID(ctx, id)
}

func (r *memReads) UserTicketCount(_ context.Context, raffleID, userID uuid.UUID) (int, error) {
	n := 0
	for _, t := range r.store.tickets {
		if t.raffleID == raffleID && t.userID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memReads) DistinctEntrantCount(_ context.Context, raffleID uuid.UUID) (int, error) {
	users := make(map[uuid.UUID]bool)
	for _, t := range r.store.tickets {
		if t.raffleID == raffleID {
			users[t.userID] = true
		}
	}
	return len(users), nil
}

func (r *memReads) WinnerCount(_ context.Context, raffleID uuid.UUID) (int, error) {
	n := 0
	for _, w := range r.store.winners {
		if w.raffleID == raffleID {
			n++
		}
	}
	return n, nil
}

func (r *memReads) CandidateTicketIDs(_ context.Context, raffleID uuid.UUID) ([]uuid.UUID, error) {
	won := make(map[uuid.UUID]bool)
	for _, w := range r.store.winners {
		won[w.ticketID] = true
	}
	recs := make([]ticketRec, 0)
	for _, t := range r.store.tickets {
		if t.raffleID == raffleID && !won[t.id] {
			recs = append(recs, t)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].number < recs[j].number })
	ids := make([]uuid.UUID, len(recs))
	for i, t := range recs {
		ids[i] = t.id
	}
	return ids, nil
}

// lockedReads is the pool-scoped variant: each call takes the store lock.
type lockedReads struct {
	store *memStore
}

func (r *lockedReads) withLock() *memReads {
	return &memReads{store: r.store}
}

func (r *lockedReads) RaffleByID(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.withLock().RaffleByID(ctx, id)
}

func (r *lockedReads) RaffleForUpdate(ctx context.Context, id uuid.UUID) (*raffle.Raffle, error) {
	return r.RaffleByID(ctx, id)
}

func (r *lockedReads) UserTicketCount(ctx context.Context, raffleID, userID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.withLock().UserTicketCount(ctx, raffleID, userID)
}

func (r *lockedReads) DistinctEntrantCount(ctx context.Context, raffleID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.withLock().DistinctEntrantCount(ctx, raffleID)
}

func (r *lockedReads) WinnerCount(ctx context.Context, raffleID uuid.UUID) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.withLock().WinnerCount(ctx, raffleID)
}

func (r *lockedReads) CandidateTicketIDs(ctx context.Context, raffleID uuid.UUID) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.withLock().CandidateTicketIDs(ctx, raffleID)
}
