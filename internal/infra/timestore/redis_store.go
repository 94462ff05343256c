package timestore

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"raffle-engine/internal/domain/drawing"
	"raffle-engine/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ScheduledEvent pairs a decoded drawing event with the raw sorted-set member
// it came from, so Remove can address exactly that member after execution.
type ScheduledEvent struct {
	Event  drawing.Event
	Member string
}

// RedisScheduleStore keeps pending drawing triggers in one sorted set, scored
// by execution time in epoch milliseconds. It is the recovery path next to the
// broker topic: a poller range-queries everything due, executes, then removes.
type RedisScheduleStore struct {
	client *redis.Client
	key    string
}

func NewRedisScheduleStore(client *redis.Client, key string) *RedisScheduleStore {
	return &RedisScheduleStore{client: client, key: key}
}

func (s *RedisScheduleStore) Add(ctx context.Context, ev drawing.Event) error {
	member, err := ev.Marshal()
	if err != nil {
		return errs.Wrap(err, "failed to serialize drawing event")
	}

	if err := s.client.ZAdd(ctx, s.key, &redis.Z{
		Score:  float64(ev.Score()),
		Member: string(member),
	}).Err(); err != nil {
		return errs.Wrap(err, "failed to add drawing schedule")
	}
	return nil
}

// Due returns every entry whose score is at or before now. Entries that no
// longer parse are dropped from the set and logged rather than wedging the
// poller forever.
func (s *RedisScheduleStore) Due(ctx context.Context, now time.Time) ([]ScheduledEvent, error) {
	members, err := s.client.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to range drawing schedule")
	}

	events := make([]ScheduledEvent, 0, len(members))
	for _, member := range members {
		ev, parseErr := drawing.UnmarshalEvent([]byte(member))
		if parseErr != nil {
			slog.Warn("dropping malformed schedule entry", "error", parseErr.Error())
			if remErr := s.client.ZRem(ctx, s.key, member).Err(); remErr != nil {
				return nil, errs.Wrap(remErr, "failed to drop malformed schedule entry")
			}
			continue
		}
		events = append(events, ScheduledEvent{Event: ev, Member: member})
	}
	return events, nil
}

func (s *RedisScheduleStore) Remove(ctx context.Context, member string) error {
	if err := s.client.ZRem(ctx, s.key, member).Err(); err != nil {
		return errs.Wrap(err, "failed to remove drawing schedule entry")
	}
	return nil
}

// CancelByRaffle removes every pending entry for the raffle, e.g. on admin
// cancellation. Returns how many entries were removed.
func (s *RedisScheduleStore) CancelByRaffle(ctx context.Context, raffleID uuid.UUID) (int, error) {
	members, err := s.client.ZRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return 0, errs.Wrap(err, "failed to scan drawing schedule")
	}

	removed := 0
	for _, member := range members {
		ev, parseErr := drawing.UnmarshalEvent([]byte(member))
		if parseErr != nil || ev.RaffleID != raffleID {
			continue
		}
		if err := s.client.ZRem(ctx, s.key, member).Err(); err != nil {
			return removed, errs.Wrap(err, "failed to remove drawing schedule entry")
		}
		removed++
	}
	return removed, nil
}
