package redissubscriber

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var ErrChannelClosed = errors.New("redis pubsub channel closed")

// SubnetUpdatesSubscriber слушает канал обновлений списка доверенных подсетей
// и на каждое сообщение перечитывает список. Ошибка перечитывания не
// останавливает подписчика: в силе остаётся прежний список.
type SubnetUpdatesSubscriber struct {
	rdb          *redis.Client
	channel      string
	subnetHolder ports.SubnetHolder
	log          *logger.Logger
}

func NewSubnetUpdatesSubscriber(
	rdb *redis.Client,
	subnetHolder ports.SubnetHolder,
	channel string,
) *SubnetUpdatesSubscriber {
	return &SubnetUpdatesSubscriber{
		rdb:          rdb,
		channel:      channel,
		subnetHolder: subnetHolder,
		log:          logger.Nop(),
	}
}

func (s *SubnetUpdatesSubscriber) WithLogger(log *logger.Logger) *SubnetUpdatesSubscriber {
	s.log = log
	return s
}

// Start блокируется до отмены контекста или закрытия канала.
func (s *SubnetUpdatesSubscriber) Start(ctx context.Context) error {
	pubsub := s.rdb.Subscribe(ctx, s.channel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	s.log.InfoContext(ctx, "subscribed to trusted list updates", "channel", s.channel)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return ErrChannelClosed
			}
			if err := s.subnetHolder.ReloadSubnets(ctx); err != nil {
				s.log.ErrorContext(ctx, "reload trusted subnets failed",
					"channel", s.channel, "payload", msg.Payload, "error", err)
				continue
			}
			s.log.InfoContext(ctx, "trusted subnets reloaded", "payload", msg.Payload)
		}
	}
}
