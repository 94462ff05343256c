//go:build unit

package worker_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/infra/timestore"
	"raffle-engine/internal/pkg/clock"
	"raffle-engine/internal/pkg/errs"
	"raffle-engine/internal/usecase/commands"
	"raffle-engine/internal/worker"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pollerKey = "raffle:drawing:schedule:test"

func dueExpectation(now time.Time) *redis.ZRangeBy {
	return &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}
}

func TestSchedulePollerTick(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("期限到来エントリを実行して削除する", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := timestore.NewRedisScheduleStore(db, pollerKey)
		draws := &fakeDraws{}
		poller := worker.NewSchedulePoller(store, draws, clock.NewMockClock(now), time.Second)

		ev := drawing.NewEvent(uuid.New(), now.Add(-time.Minute), now.Add(-time.Hour))
		member, err := ev.Marshal()
		require.NoError(t, err)

		mock.ExpectZRangeByScore(pollerKey, dueExpectation(now)).SetVal([]string{string(member)})
		mock.ExpectZRem(pollerKey, string(member)).SetVal(1)

		require.NoError(t, poller.Tick(ctx))
		require.Len(t, draws.executed, 1)
		assert.Equal(t, ev.RaffleID, draws.executed[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("終端エラーでもエントリは削除する", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := timestore.NewRedisScheduleStore(db, pollerKey)
		draws := &fakeDraws{err: errs.Mark(errs.New("already terminal"), commands.ErrNotDrawable)}
		poller := worker.NewSchedulePoller(store, draws, clock.NewMockClock(now), time.Second)

		ev := drawing.NewEvent(uuid.New(), now.Add(-time.Minute), now.Add(-time.Hour))
		member, err := ev.Marshal()
		require.NoError(t, err)

		mock.ExpectZRangeByScore(pollerKey, dueExpectation(now)).SetVal([]string{string(member)})
		mock.ExpectZRem(pollerKey, string(member)).SetVal(1)

		require.NoError(t, poller.Tick(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("一時エラーのエントリは次回へ持ち越す", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := timestore.NewRedisScheduleStore(db, pollerKey)
		draws := &fakeDraws{err: errs.New("connection refused")}
		poller := worker.NewSchedulePoller(store, draws, clock.NewMockClock(now), time.Second)

		ev := drawing.NewEvent(uuid.New(), now.Add(-time.Minute), now.Add(-time.Hour))
		member, err := ev.Marshal()
		require.NoError(t, err)

		// ZRem is not expected: the entry stays in the set.
		mock.ExpectZRangeByScore(pollerKey, dueExpectation(now)).SetVal([]string{string(member)})

		require.NoError(t, poller.Tick(ctx))
		require.Len(t, draws.executed, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("期限未到来なら何もしない", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := timestore.NewRedisScheduleStore(db, pollerKey)
		draws := &fakeDraws{}
		poller := worker.NewSchedulePoller(store, draws, clock.NewMockClock(now), time.Second)

		mock.ExpectZRangeByScore(pollerKey, dueExpectation(now)).SetVal([]string{})

		require.NoError(t, poller.Tick(ctx))
		assert.Empty(t, draws.executed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ストア障害はエラーとして返す", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := timestore.NewRedisScheduleStore(db, pollerKey)
		draws := &fakeDraws{}
		poller := worker.NewSchedulePoller(store, draws, clock.NewMockClock(now), time.Second)

		mock.ExpectZRangeByScore(pollerKey, dueExpectation(now)).SetErr(errs.New("redis down"))

		assert.Error(t, poller.Tick(ctx))
		assert.Empty(t, draws.executed)
	})
}
