package failban

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain/subnet"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/ports"
)

var _ ports.BanEngine = (*Engine)(nil)

// Engine учитывает неудачные попытки входа по подсетям и банит подсеть,
// когда число попыток в скользящем окне достигает порога.
//
// Оба журнала (попытки и баны) живут в RecordStore и на каждой операции
// читаются, меняются и сохраняются целиком. Все такие транзакции
// сериализуются одним мьютексом, иначе параллельные RecordFailure
// по одной подсети теряют обновления.
//
// Если хранилище реализует ports.RecordLocker (redis, postgres), изменяющие
// операции дополнительно берут его блокировку: так не теряются обновления
// от нескольких экземпляров сервиса с общим хранилищем.
//
// Фоновых чисток нет: старые попытки удаляются при записи в подсеть,
// просроченный бан удаляется при следующей проверке IsBlocked этой подсети.
type Engine struct {
	mu     sync.Mutex
	store  ports.RecordStore
	locker ports.RecordLocker // nil, если хранилище локальное
	keyer  *subnet.Keyer
	cfg    Config
	window int64 // FailureWindow, сек
	banFor int64 // BanDuration, сек
}

func NewEngine(store ports.RecordStore, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keyer, err := subnet.NewKeyer(cfg.MaskLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	locker, _ := store.(ports.RecordLocker)
	return &Engine{
		store:  store,
		locker: locker,
		keyer:  keyer,
		cfg:    cfg,
		window: int64(cfg.FailureWindow / time.Second),
		banFor: int64(cfg.BanDuration / time.Second),
	}, nil
}

func (e *Engine) Keyer() *subnet.Keyer { return e.keyer }

// RecordFailure добавляет неудачную попытку для подсети адреса.
// Не-IPv4 адрес молча игнорируется. Возвращает true, если после этой
// попытки подсеть забанена (бан поставлен или продлён).
func (e *Engine) RecordFailure(ctx context.Context, address string, now time.Time) (bool, error) {
	sn, ok := e.keyer.Of(address)
	if !ok {
		return false, nil
	}
	ts := now.Unix()

	e.mu.Lock()
	defer e.mu.Unlock()
	unlock, err := e.lockStore(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	attempts, err := e.loadFailureLog(ctx)
	if err != nil {
		return false, err
	}
	recent := prune(append(attempts[sn], ts), ts, e.window)
	attempts[sn] = recent
	if err := e.save(ctx, domain.FailedAttemptsKey, attempts); err != nil {
		return false, err
	}

	if len(recent) < e.cfg.FailThreshold {
		return false, nil
	}

	bans, err := e.loadBanTable(ctx)
	if err != nil {
		return false, err
	}
	bans[sn] = ts + e.banFor
	if err := e.save(ctx, domain.BlockedSubnetsKey, bans); err != nil {
		return false, err
	}
	return true, nil
}

// IsBlocked сообщает, забанена ли подсеть адреса на момент now.
// Просроченный бан удаляется прямо здесь.
func (e *Engine) IsBlocked(ctx context.Context, address string, now time.Time) (bool, error) {
	sn, ok := e.keyer.Of(address)
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	unlock, err := e.lockStore(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	bans, err := e.loadBanTable(ctx)
	if err != nil {
		return false, err
	}
	expiry, found := bans[sn]
	if !found {
		return false, nil
	}
	if now.Unix() < expiry {
		return true, nil
	}

	delete(bans, sn)
	if err := e.save(ctx, domain.BlockedSubnetsKey, bans); err != nil {
		return false, err
	}
	return false, nil
}

// ListActive возвращает активные на момент now баны, отсортированные по подсети.
// Просроченные записи не трогает.
func (e *Engine) ListActive(ctx context.Context, now time.Time) ([]domain.Ban, error) {
	e.mu.Lock()
	bans, err := e.loadBanTable(ctx)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	ts := now.Unix()
	active := make([]domain.Ban, 0, len(bans))
	for sn, expiry := range bans {
		if ts < expiry {
			active = append(active, domain.Ban{Subnet: sn, ExpiresAt: time.Unix(expiry, 0)})
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Subnet < active[j].Subnet })
	return active, nil
}

// Unban снимает бан с подсети. Отсутствие бана ошибкой не считается.
func (e *Engine) Unban(ctx context.Context, sn domain.Subnet) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	unlock, err := e.lockStore(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	bans, err := e.loadBanTable(ctx)
	if err != nil {
		return err
	}
	if _, found := bans[sn]; !found {
		return nil
	}
	delete(bans, sn)
	return e.save(ctx, domain.BlockedSubnetsKey, bans)
}

// prune оставляет только попытки моложе окна. Порядок сохраняется.
func prune(attempts []int64, now, window int64) []int64 {
	recent := attempts[:0]
	for _, t := range attempts {
		if now-t < window {
			recent = append(recent, t)
		}
	}
	return recent
}

func (e *Engine) lockStore(ctx context.Context) (func(), error) {
	if e.locker == nil {
		return func() {}, nil
	}
	unlock, err := e.locker.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: lock records: %w", domain.ErrStoreUnavailable, err)
	}
	return unlock, nil
}

func (e *Engine) loadFailureLog(ctx context.Context) (domain.FailureLog, error) {
	var attempts domain.FailureLog
	if err := e.load(ctx, domain.FailedAttemptsKey, &attempts); err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = make(domain.FailureLog)
	}
	return attempts, nil
}

func (e *Engine) loadBanTable(ctx context.Context) (domain.BanTable, error) {
	var bans domain.BanTable
	if err := e.load(ctx, domain.BlockedSubnetsKey, &bans); err != nil {
		return nil, err
	}
	if bans == nil {
		bans = make(domain.BanTable)
	}
	return bans, nil
}

func (e *Engine) load(ctx context.Context, key domain.RecordKey, v any) error {
	data, err := e.store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", domain.ErrStoreUnavailable, key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrStoreUnavailable, key, err)
	}
	return nil
}

func (e *Engine) save(ctx context.Context, key domain.RecordKey, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := e.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrStoreUnavailable, key, err)
	}
	return nil
}
