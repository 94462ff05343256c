//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/domain/raffle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	errNotFound = errors.New("not found")
	errConflict = errors.New("conflict")
)

var baseTime = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

type fixtureOpt func(*fixtureParams)

type fixtureParams struct {
	winnersCount      int
	maxEntriesPerUser int
	entryStartAt      time.Time
	entryEndAt        time.Time
	drawAt            time.Time
	status            raffle.Status
}

func withWinnersCount(n int) fixtureOpt {
	return func(p *fixtureParams) { p.winnersCount = n }
}

func withMaxEntries(n int) fixtureOpt {
	return func(p *fixtureParams) { p.maxEntriesPerUser = n }
}

func withStatus(s raffle.Status) fixtureOpt {
	return func(p *fixtureParams) { p.status = s }
}

func withWindow(start, end, draw time.Time) fixtureOpt {
	return func(p *fixtureParams) {
		p.entryStartAt = start
		p.entryEndAt = end
		p.drawAt = draw
	}
}

// seedRaffle puts a raffle into the store and returns its id. Defaults: ACTIVE,
// 3 winners, 5 entries per user, window [base, base+7d], draw at base+8d.
func seedRaffle(t *testing.T, store *memStore, opts ...fixtureOpt) uuid.UUID {
	t.Helper()
	p := fixtureParams{
		winnersCount:      3,
		maxEntriesPerUser: 5,
		entryStartAt:      baseTime,
		entryEndAt:        baseTime.Add(7 * 24 * time.Hour),
		drawAt:            baseTime.Add(8 * 24 * time.Hour),
		status:            raffle.StatusActive,
	}
	for _, opt := range opts {
		opt(&p)
	}

	id := uuid.New()
	store.raffles[id] = raffleRec{
		productID:         uuid.New(),
		prizeProductID:    uuid.New(),
		title:             "fixture raffle",
		winnersCount:      p.winnersCount,
		maxEntriesPerUser: p.maxEntriesPerUser,
		entryStartAt:      p.entryStartAt,
		entryEndAt:        p.entryEndAt,
		drawAt:            p.drawAt,
		status:            p.status,
	}
	return id
}

func seedTickets(store *memStore, raffleID, userID uuid.UUID, n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		next := store.counters[raffleID] + 1
		store.counters[raffleID] = next
		id := uuid.New()
		store.tickets = append(store.tickets, ticketRec{
			id:       id,
			raffleID: raffleID,
			userID:   userID,
			number:   next,
		})
		ids[i] = id
	}
	return ids
}

// Fake ports for the command collaborators.

type fakePublisher struct {
	events []drawing.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, ev drawing.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

type fakeSchedule struct {
	added     []drawing.Event
	cancelled []uuid.UUID
	addErr    error
}

func (s *fakeSchedule) Add(_ context.Context, ev drawing.Event) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, ev)
	return nil
}

func (s *fakeSchedule) CancelByRaffle(_ context.Context, raffleID uuid.UUID) (int, error) {
	s.cancelled = append(s.cancelled, raffleID)
	removed := 0
	for _, ev := range s.added {
		if ev.RaffleID == raffleID {
			removed++
		}
	}
	return removed, nil
}

type fakeNotifier struct {
	calls [][]uuid.UUID
	err   error
}

func (n *fakeNotifier) NotifyWinners(_ context.Context, _ uuid.UUID, ticketIDs []uuid.UUID) error {
	n.calls = append(n.calls, ticketIDs)
	return n.err
}

func requireTicketNumbers(t *testing.T, store *memStore, raffleID uuid.UUID, want []int64) {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	var got []int64
	for _, tk := range store.tickets {
		if tk.raffleID == raffleID {
			got = append(got, tk.number)
		}
	}
	require.ElementsMatch(t, want, got)
}
