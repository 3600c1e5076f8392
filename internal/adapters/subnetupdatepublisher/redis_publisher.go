package subnetupdatepublisher

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.SubnetUpdatesPublisher = (*RedisSubnetUpdatesPublisher)(nil)

// RedisSubnetUpdatesPublisher оповещает все экземпляры сервиса (режим external)
// об изменении списка доверенных подсетей. В сообщении передаётся тип списка,
// подписчики перечитывают список целиком из БД.
type RedisSubnetUpdatesPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisSubnetUpdatesPublisher(rdb *redis.Client, channel string) *RedisSubnetUpdatesPublisher {
	return &RedisSubnetUpdatesPublisher{rdb: rdb, channel: channel}
}

func (p *RedisSubnetUpdatesPublisher) PublishSubnetUpdated(ctx context.Context) error {
	if err := p.rdb.Publish(ctx, p.channel, string(domain.Trusted)).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.channel, err)
	}
	return nil
}
