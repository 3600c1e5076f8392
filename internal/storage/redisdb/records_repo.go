package redisdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var (
	_ ports.RecordStore  = (*RecordsRepo)(nil)
	_ ports.RecordLocker = (*RecordsRepo)(nil)
)

const (
	lockKey = "records_lock"
	// TTL блокировки: если экземпляр упал, не сняв её, другие ждут не дольше.
	DefaultLockTTL = 5 * time.Second
	lockRetry      = 20 * time.Millisecond
)

// Удаляет ключ блокировки, только если в нём наш токен.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RecordsRepo хранит каждую запись failban в отдельном строковом ключе redis
// вида "<prefix><record key>", например "failban:blocked_subnets".
// TTL на ключи не ставится: устаревшие попытки и баны вычищает сам движок.
type RecordsRepo struct {
	client  *redis.Client
	prefix  string
	lockTTL time.Duration
}

func NewRecordsRepo(rdc *redis.Client, prefix string) *RecordsRepo {
	return &RecordsRepo{client: rdc, prefix: prefix, lockTTL: DefaultLockTTL}
}

func (r *RecordsRepo) Load(ctx context.Context, key domain.RecordKey) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RecordsRepo) Save(ctx context.Context, key domain.RecordKey, data []byte) error {
	return r.client.Set(ctx, r.prefix+string(key), data, 0).Err()
}

// Lock захватывает блокировку "<prefix>records_lock" через SET NX PX
// и повторяет попытку, пока ключ занят или не отменён ctx.
func (r *RecordsRepo) Lock(ctx context.Context) (func(), error) {
	key := r.prefix + lockKey
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("redis lock %s: %w", key, ctx.Err())
		case <-time.After(lockRetry):
		}
	}

	return func() {
		// после истечения TTL ключ мог занять другой экземпляр, его не трогаем
		_ = unlockScript.Run(context.WithoutCancel(ctx), r.client, []string{key}, token).Err()
	}, nil
}
