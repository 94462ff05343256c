package bootstrap

import (
	"context"

	"raffle-engine/internal/infra/timestore"
	"raffle-engine/internal/pkg/config"
	"raffle-engine/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewScheduleStore,
		func(s *timestore.RedisScheduleStore) commands.ScheduleStore { return s },
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewScheduleStore(client *redis.Client, cfg config.Config) *timestore.RedisScheduleStore {
	return timestore.NewRedisScheduleStore(client, cfg.Redis.ScheduleKey)
}
