//go:build unit

package raffle_test

import (
	"testing"
	"time"

	"raffle-engine/internal/domain/raffle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type raffleParams struct {
	title             string
	winnersCount      int
	maxEntriesPerUser int
	entryStartAt      time.Time
	entryEndAt        time.Time
	drawAt            time.Time
}

func defaultParams() raffleParams {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return raffleParams{
		title:             "spring raffle",
		winnersCount:      3,
		maxEntriesPerUser: 5,
		entryStartAt:      base,
		entryEndAt:        base.Add(7 * 24 * time.Hour),
		drawAt:            base.Add(8 * 24 * time.Hour),
	}
}

func buildRaffle(t *testing.T, p raffleParams) *raffle.Raffle {
	t.Helper()
	r, err := raffle.NewRaffle(
		uuid.New(), uuid.New(),
		p.title, "",
		p.winnersCount, p.maxEntriesPerUser,
		p.entryStartAt, p.entryEndAt, p.drawAt,
	)
	require.NoError(t, err)
	return r
}

func buildWithStatus(t *testing.T, p raffleParams, status raffle.Status) *raffle.Raffle {
	t.Helper()
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return raffle.ReconstructRaffle(
		uuid.New(), uuid.New(), uuid.New(),
		p.title, "",
		p.winnersCount, p.maxEntriesPerUser,
		p.entryStartAt, p.entryEndAt, p.drawAt,
		status,
		now, now,
	)
}

func TestNewRaffle(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		r := buildRaffle(t, defaultParams())
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, raffle.StatusDraft, r.Status())
	})

	t.Run("パラメータ検証", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*raffleParams)
			errIs  error
		}{
			{
				name:   "空タイトルNG",
				mutate: func(p *raffleParams) { p.title = "" },
				errIs:  raffle.ErrEmptyTitle,
			},
			{
				name:   "当選者数0はNG",
				mutate: func(p *raffleParams) { p.winnersCount = 0 },
				errIs:  raffle.ErrInvalidWinnersCount,
			},
			{
				name:   "上限0はNG",
				mutate: func(p *raffleParams) { p.maxEntriesPerUser = 0 },
				errIs:  raffle.ErrInvalidEntryLimit,
			},
			{
				name:   "応募期間の逆転NG",
				mutate: func(p *raffleParams) { p.entryEndAt = p.entryStartAt.Add(-time.Hour) },
				errIs:  raffle.ErrInvalidEntryWindow,
			},
			{
				name:   "応募終了より前の抽選NG",
				mutate: func(p *raffleParams) { p.drawAt = p.entryEndAt.Add(-time.Hour) },
				errIs:  raffle.ErrInvalidDrawTime,
			},
			{
				name:   "抽選時刻=応募終了はOK",
				mutate: func(p *raffleParams) { p.drawAt = p.entryEndAt },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := defaultParams()
				tc.mutate(&p)
				_, err := raffle.NewRaffle(
					uuid.New(), uuid.New(),
					p.title, "",
					p.winnersCount, p.maxEntriesPerUser,
					p.entryStartAt, p.entryEndAt, p.drawAt,
				)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestRaffleLifecycle(t *testing.T) {
	t.Run("DRAFTのみ更新可", func(t *testing.T) {
		p := defaultParams()
		r := buildWithStatus(t, p, raffle.StatusReady)
		err := r.UpdateSpec("new", "", 1, 1, p.entryStartAt, p.entryEndAt, p.drawAt)
		assert.ErrorIs(t, err, raffle.ErrNotDraft)
	})

	t.Run("公開はDRAFTからのみ", func(t *testing.T) {
		r := buildRaffle(t, defaultParams())
		require.NoError(t, r.Publish())
		assert.Equal(t, raffle.StatusReady, r.Status())
		assert.ErrorIs(t, r.Publish(), raffle.ErrNotDraft)
	})

	t.Run("キャンセルは非終端から可", func(t *testing.T) {
		for _, st := range []raffle.Status{raffle.StatusDraft, raffle.StatusReady, raffle.StatusActive, raffle.StatusClosed} {
			r := buildWithStatus(t, defaultParams(), st)
			require.NoError(t, r.Cancel(), st)
			assert.Equal(t, raffle.StatusCancelled, r.Status())
		}
		for _, st := range []raffle.Status{raffle.StatusDrawn, raffle.StatusCancelled} {
			r := buildWithStatus(t, defaultParams(), st)
			assert.ErrorIs(t, r.Cancel(), raffle.ErrAlreadyTerminal, st)
		}
	})

	t.Run("遷移エッジの列挙", func(t *testing.T) {
		assert.True(t, raffle.StatusDraft.CanTransitionTo(raffle.StatusReady))
		assert.True(t, raffle.StatusReady.CanTransitionTo(raffle.StatusActive))
		assert.True(t, raffle.StatusActive.CanTransitionTo(raffle.StatusClosed))
		assert.True(t, raffle.StatusClosed.CanTransitionTo(raffle.StatusDrawn))
		assert.True(t, raffle.StatusActive.CanTransitionTo(raffle.StatusCancelled))

		assert.False(t, raffle.StatusDraft.CanTransitionTo(raffle.StatusActive))
		assert.False(t, raffle.StatusDrawn.CanTransitionTo(raffle.StatusCancelled))
		assert.False(t, raffle.StatusCancelled.CanTransitionTo(raffle.StatusReady))
	})
}

func TestValidateEntry(t *testing.T) {
	p := defaultParams()
	within := p.entryStartAt.Add(24 * time.Hour)

	cases := []struct {
		name      string
		status    raffle.Status
		now       time.Time
		existing  int
		requested int
		errIs     error
	}{
		{
			name:      "期間内・枠内はOK",
			status:    raffle.StatusActive,
			now:       within,
			existing:  0,
			requested: 3,
		},
		{
			name:      "数量0はNG",
			status:    raffle.StatusActive,
			now:       within,
			requested: 0,
			errIs:     raffle.ErrInvalidEntryQuantity,
		},
		{
			name:      "ACTIVE以外はNG",
			status:    raffle.StatusReady,
			now:       within,
			requested: 1,
			errIs:     raffle.ErrNotActive,
		},
		{
			name:      "開始前NG",
			status:    raffle.StatusActive,
			now:       p.entryStartAt.Add(-time.Second),
			requested: 1,
			errIs:     raffle.ErrEntryNotStarted,
		},
		{
			name:      "終了後はACTIVEのままでもNG",
			status:    raffle.StatusActive,
			now:       p.entryEndAt.Add(time.Second),
			requested: 1,
			errIs:     raffle.ErrEntryClosed,
		},
		{
			name:      "境界ちょうどはOK",
			status:    raffle.StatusActive,
			now:       p.entryEndAt,
			requested: 1,
		},
		{
			name:      "上限超過NG",
			status:    raffle.StatusActive,
			now:       within,
			existing:  3,
			requested: 3,
			errIs:     raffle.ErrEntryLimitExceeded,
		},
		{
			name:      "上限ちょうどはOK",
			status:    raffle.StatusActive,
			now:       within,
			existing:  4,
			requested: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := buildWithStatus(t, p, tc.status)
			err := r.ValidateEntry(tc.now, tc.existing, tc.requested)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDrawable(t *testing.T) {
	p := defaultParams()
	afterEnd := p.entryEndAt.Add(time.Hour)

	t.Run("応募終了後の非終端はOK", func(t *testing.T) {
		for _, st := range []raffle.Status{raffle.StatusActive, raffle.StatusClosed} {
			r := buildWithStatus(t, p, st)
			assert.NoError(t, r.ValidateDrawable(afterEnd), st)
		}
	})

	t.Run("応募期間中はNG", func(t *testing.T) {
		r := buildWithStatus(t, p, raffle.StatusClosed)
		assert.ErrorIs(t, r.ValidateDrawable(p.entryEndAt.Add(-time.Second)), raffle.ErrEntryStillOpen)
	})

	t.Run("終端状態はNG", func(t *testing.T) {
		for _, st := range []raffle.Status{raffle.StatusDrawn, raffle.StatusCancelled} {
			r := buildWithStatus(t, p, st)
			assert.ErrorIs(t, r.ValidateDrawable(afterEnd), raffle.ErrAlreadyTerminal, st)
		}
	})
}
