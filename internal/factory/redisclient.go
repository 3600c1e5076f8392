package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
)

const pingTimeout = 2 * time.Second

// NewClientRecords — клиент для чтения и записи журналов failban.
func NewClientRecords(cfg *config.Database) (*redis.Client, error) {
	return connect(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Policer.DialTimeout,
		ReadTimeout:  cfg.Redis.Policer.ReadTimeout,
		WriteTimeout: cfg.Redis.Policer.WriteTimeout,
		PoolSize:     cfg.Redis.Policer.PoolSize,
	})
}

// NewClientSubscriber — отдельный клиент для pub/sub: подписка держит
// соединение бесконечно, поэтому read timeout здесь обычно нулевой.
func NewClientSubscriber(cfg *config.Database) (*redis.Client, error) {
	return connect(&redis.Options{
		Addr:        cfg.Redis.Address,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		ReadTimeout: cfg.Redis.Subscriber.ReadTimeout,
		PoolSize:    cfg.Redis.Subscriber.PoolSize,
	})
}

func connect(opts *redis.Options) (*redis.Client, error) {
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
