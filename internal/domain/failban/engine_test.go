package failban

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
	mem "github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/memory"
)

func newTestEngine(t *testing.T, cfg Config) (*Engine, *mem.RecordsDB) {
	t.Helper()
	store := mem.NewRecordsDB()
	e, err := NewEngine(store, cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e, store
}

func at(sec int64) time.Time { return time.Unix(sec, 0) }

func mustRecord(t *testing.T, e *Engine, addr string, now time.Time) bool {
	t.Helper()
	banned, err := e.RecordFailure(context.Background(), addr, now)
	if err != nil {
		t.Fatalf("RecordFailure(%s) error: %v", addr, err)
	}
	return banned
}

func mustBlocked(t *testing.T, e *Engine, addr string, now time.Time) bool {
	t.Helper()
	blocked, err := e.IsBlocked(context.Background(), addr, now)
	if err != nil {
		t.Fatalf("IsBlocked(%s) error: %v", addr, err)
	}
	return blocked
}

func TestEngine_ThresholdBansSubnet(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	for i := int64(0); i < 4; i++ {
		if mustRecord(t, e, "198.51.100.10", at(1000+i)) {
			t.Fatalf("unexpected ban after %d failures", i+1)
		}
	}
	if mustBlocked(t, e, "198.51.100.10", at(1004)) {
		t.Fatalf("expected not blocked after 4 failures")
	}

	if !mustRecord(t, e, "198.51.100.11", at(1004)) {
		t.Fatalf("expected ban on 5th failure")
	}
	if !mustBlocked(t, e, "198.51.100.200", at(1005)) {
		t.Fatalf("expected whole /24 to be blocked after 5th failure")
	}
	if mustBlocked(t, e, "198.51.101.10", at(1005)) {
		t.Fatalf("neighbouring subnet must not be blocked")
	}
}

func TestEngine_SlidingWindow(t *testing.T) {
	e, store := newTestEngine(t, DefaultConfig())

	for i := int64(0); i < 4; i++ {
		mustRecord(t, e, "192.0.2.1", at(i))
	}
	// 4 old failures fall out of the window: count restarts at 1
	if mustRecord(t, e, "192.0.2.1", at(3603)) {
		t.Fatalf("failures older than the window must not count")
	}
	if mustBlocked(t, e, "192.0.2.1", at(3603)) {
		t.Fatalf("expected not blocked")
	}

	raw, _ := store.Load(context.Background(), domain.FailedAttemptsKey)
	var log domain.FailureLog
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("decode failure log: %v", err)
	}
	got := log["192.0.2.0/24"]
	if len(got) != 1 || got[0] != 3603 {
		t.Fatalf("expected pruned log [3603], got %v", got)
	}
}

func TestEngine_WindowBoundaryIsExclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 2
	e, _ := newTestEngine(t, cfg)

	mustRecord(t, e, "192.0.2.1", at(0))
	// now - t == window: the first failure is already stale
	if mustRecord(t, e, "192.0.2.1", at(3600)) {
		t.Fatalf("failure exactly one window old must be pruned")
	}
	if !mustRecord(t, e, "192.0.2.1", at(3601)) {
		t.Fatalf("expected ban with two failures inside the window")
	}
}

func TestEngine_BanExpiry(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	const banAt = 500
	for i := int64(0); i < 5; i++ {
		mustRecord(t, e, "203.0.113.7", at(banAt-4+i))
	}

	if !mustBlocked(t, e, "203.0.113.7", at(banAt+3599)) {
		t.Fatalf("expected blocked right before expiry")
	}
	active, err := e.ListActive(ctx, at(banAt+3599))
	if err != nil || len(active) != 1 {
		t.Fatalf("expected one active ban, got %v (err %v)", active, err)
	}

	if mustBlocked(t, e, "203.0.113.7", at(banAt+3600)) {
		t.Fatalf("expected not blocked at expiry")
	}
	// lazy unban removed the entry: even an earlier clock sees no ban
	if mustBlocked(t, e, "203.0.113.7", at(banAt+10)) {
		t.Fatalf("expired ban must be removed after first observation")
	}
	active, err = e.ListActive(ctx, at(banAt+10))
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active bans, got %v", active)
	}
}

func TestEngine_EndToEndScenario(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	for i := int64(0); i <= 4; i++ {
		mustRecord(t, e, "203.0.113.7", at(i))
	}

	if !mustBlocked(t, e, "203.0.113.9", at(5)) {
		t.Fatalf("expected 203.0.113.9 blocked at t=5")
	}

	active, err := e.ListActive(ctx, at(5))
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 1 || active[0].Subnet != "203.0.113.0/24" || active[0].ExpiresAt.Unix() != 3604 {
		t.Fatalf("unexpected active bans: %+v", active)
	}

	if mustBlocked(t, e, "203.0.113.9", at(3605)) {
		t.Fatalf("expected not blocked at t=3605")
	}
	active, err = e.ListActive(ctx, at(3605))
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected subnet gone from active list, got %+v", active)
	}
}

func TestEngine_FailuresWhileBannedExtendBan(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	for i := int64(0); i < 5; i++ {
		mustRecord(t, e, "203.0.113.7", at(i))
	}
	if !mustRecord(t, e, "203.0.113.7", at(1000)) {
		t.Fatalf("expected failure over threshold to keep the ban")
	}
	if !mustBlocked(t, e, "203.0.113.7", at(4599)) {
		t.Fatalf("expected ban extended to t=4600")
	}
}

func TestEngine_IndependentWindowAndDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 3
	cfg.FailureWindow = 60 * time.Second
	cfg.BanDuration = 10 * time.Minute
	e, _ := newTestEngine(t, cfg)

	mustRecord(t, e, "10.1.1.1", at(0))
	mustRecord(t, e, "10.1.1.2", at(30))
	// first failure left the 60s window
	if mustRecord(t, e, "10.1.1.3", at(61)) {
		t.Fatalf("expected no ban: only two failures inside 60s window")
	}
	if !mustRecord(t, e, "10.1.1.4", at(62)) {
		t.Fatalf("expected ban on third failure inside window")
	}
	if !mustBlocked(t, e, "10.1.1.5", at(62+599)) {
		t.Fatalf("expected blocked for 10 minutes")
	}
	if mustBlocked(t, e, "10.1.1.5", at(62+600)) {
		t.Fatalf("expected ban to end after 10 minutes")
	}
}

func TestEngine_InvalidAddressIsIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 1
	e, store := newTestEngine(t, cfg)

	for _, addr := range []string{"2001:db8::1", "::ffff:203.0.113.7", "garbage", ""} {
		if mustRecord(t, e, addr, at(1)) {
			t.Fatalf("RecordFailure(%q) must not ban", addr)
		}
		if mustBlocked(t, e, addr, at(2)) {
			t.Fatalf("IsBlocked(%q) must be false", addr)
		}
	}

	raw, _ := store.Load(context.Background(), domain.FailedAttemptsKey)
	if raw != nil {
		t.Fatalf("expected no failure log for invalid input, got %s", raw)
	}
}

func TestEngine_UnbanIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := context.Background()

	if err := e.Unban(ctx, "192.0.2.0/24"); err != nil {
		t.Fatalf("Unban of unknown subnet returned error: %v", err)
	}

	for i := int64(0); i < 5; i++ {
		mustRecord(t, e, "192.0.2.1", at(i))
	}
	if !mustBlocked(t, e, "192.0.2.1", at(10)) {
		t.Fatalf("expected blocked")
	}

	for i := 0; i < 2; i++ {
		if err := e.Unban(ctx, "192.0.2.0/24"); err != nil {
			t.Fatalf("Unban #%d error: %v", i+1, err)
		}
	}
	if mustBlocked(t, e, "192.0.2.1", at(11)) {
		t.Fatalf("expected not blocked after unban")
	}
}

func TestEngine_ListActiveIsSortedAndReadOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 1
	e, store := newTestEngine(t, cfg)
	ctx := context.Background()

	mustRecord(t, e, "10.0.2.1", at(0))
	mustRecord(t, e, "10.0.1.1", at(100))
	mustRecord(t, e, "10.0.3.1", at(200))

	active, err := e.ListActive(ctx, at(3650))
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 2 || active[0].Subnet != "10.0.1.0/24" || active[1].Subnet != "10.0.3.0/24" {
		t.Fatalf("unexpected active bans: %+v", active)
	}

	raw, _ := store.Load(ctx, domain.BlockedSubnetsKey)
	var bans domain.BanTable
	if err := json.Unmarshal(raw, &bans); err != nil {
		t.Fatalf("decode bans: %v", err)
	}
	if _, ok := bans["10.0.2.0/24"]; !ok {
		t.Fatalf("ListActive must not prune expired entries")
	}
}

func TestEngine_ConcurrentFailuresAreNotLost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 1000
	e, store := newTestEngine(t, cfg)

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			if _, err := e.RecordFailure(context.Background(), fmt.Sprintf("172.16.5.%d", i), at(100)); err != nil {
				t.Errorf("RecordFailure error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	raw, _ := store.Load(context.Background(), domain.FailedAttemptsKey)
	var log domain.FailureLog
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("decode failure log: %v", err)
	}
	if got := len(log["172.16.5.0/24"]); got != workers {
		t.Fatalf("expected %d recorded failures, got %d", workers, got)
	}
}

// lockingStore — общее хранилище с внешней блокировкой, как у redis/postgres.
type lockingStore struct {
	*mem.RecordsDB
	mu      *sync.Mutex
	lockErr error
	locks   int
	unlocks int
}

func (l *lockingStore) Lock(_ context.Context) (func(), error) {
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	l.mu.Lock()
	l.locks++
	return func() {
		l.unlocks++
		l.mu.Unlock()
	}, nil
}

func TestEngine_SharedStoreLockSerializesInstances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailThreshold = 1000
	shared := mem.NewRecordsDB()
	var storeMu sync.Mutex

	// два экземпляра движка со своими мьютексами и общим хранилищем
	stores := []*lockingStore{
		{RecordsDB: shared, mu: &storeMu},
		{RecordsDB: shared, mu: &storeMu},
	}
	engines := make([]*Engine, len(stores))
	for i, st := range stores {
		e, err := NewEngine(st, cfg)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		engines[i] = e
	}

	const perEngine = 32
	var wg sync.WaitGroup
	for _, e := range engines {
		for i := 0; i < perEngine; i++ {
			wg.Add(1)
			go func(e *Engine, i int) {
				defer wg.Done()
				if _, err := e.RecordFailure(context.Background(), fmt.Sprintf("172.16.9.%d", i), at(100)); err != nil {
					t.Errorf("RecordFailure error: %v", err)
				}
			}(e, i)
		}
	}
	wg.Wait()

	raw, _ := shared.Load(context.Background(), domain.FailedAttemptsKey)
	var log domain.FailureLog
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("decode failure log: %v", err)
	}
	if got := len(log["172.16.9.0/24"]); got != 2*perEngine {
		t.Fatalf("expected %d recorded failures, got %d", 2*perEngine, got)
	}

	storeMu.Lock()
	defer storeMu.Unlock()
	for i, st := range stores {
		if st.locks != perEngine || st.unlocks != perEngine {
			t.Fatalf("store %d: expected %d locks and unlocks, got %d/%d", i, perEngine, st.locks, st.unlocks)
		}
	}
}

func TestEngine_LockedOperations(t *testing.T) {
	ctx := context.Background()
	st := &lockingStore{RecordsDB: mem.NewRecordsDB(), mu: &sync.Mutex{}}
	e, err := NewEngine(st, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	mustRecord(t, e, "192.0.2.1", at(1))
	mustBlocked(t, e, "192.0.2.1", at(1))
	if err := e.Unban(ctx, "192.0.2.0/24"); err != nil {
		t.Fatalf("Unban: %v", err)
	}
	if _, err := e.ListActive(ctx, at(1)); err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	// ListActive только читает и блокировку не берёт
	if st.locks != 3 || st.unlocks != 3 {
		t.Fatalf("expected 3 locks and unlocks, got %d/%d", st.locks, st.unlocks)
	}
}

func TestEngine_LockErrorIsStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("lock timeout")
	st := &lockingStore{RecordsDB: mem.NewRecordsDB(), mu: &sync.Mutex{}, lockErr: boom}
	e, err := NewEngine(st, DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	if _, err := e.RecordFailure(ctx, "192.0.2.1", at(1)); !errors.Is(err, domain.ErrStoreUnavailable) || !errors.Is(err, boom) {
		t.Fatalf("RecordFailure: expected ErrStoreUnavailable wrapping cause, got %v", err)
	}
	if _, err := e.IsBlocked(ctx, "192.0.2.1", at(1)); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("IsBlocked: expected ErrStoreUnavailable, got %v", err)
	}
	if err := e.Unban(ctx, "192.0.2.0/24"); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("Unban: expected ErrStoreUnavailable, got %v", err)
	}
	if raw, _ := st.Load(ctx, domain.FailedAttemptsKey); raw != nil {
		t.Fatalf("nothing must be written without the lock, got %q", raw)
	}
}

type failingStore struct {
	loadErr error
	saveErr error
	data    map[domain.RecordKey][]byte
}

func (f *failingStore) Load(_ context.Context, key domain.RecordKey) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[key], nil
}

func (f *failingStore) Save(_ context.Context, _ domain.RecordKey, _ []byte) error {
	return f.saveErr
}

func TestEngine_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("load", func(t *testing.T) {
		e, err := NewEngine(&failingStore{loadErr: boom}, DefaultConfig())
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		if _, err := e.RecordFailure(ctx, "192.0.2.1", at(1)); !errors.Is(err, domain.ErrStoreUnavailable) || !errors.Is(err, boom) {
			t.Fatalf("RecordFailure: expected ErrStoreUnavailable wrapping cause, got %v", err)
		}
		if _, err := e.IsBlocked(ctx, "192.0.2.1", at(1)); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("IsBlocked: expected ErrStoreUnavailable, got %v", err)
		}
		if _, err := e.ListActive(ctx, at(1)); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("ListActive: expected ErrStoreUnavailable, got %v", err)
		}
		if err := e.Unban(ctx, "192.0.2.0/24"); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("Unban: expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("save", func(t *testing.T) {
		e, _ := NewEngine(&failingStore{saveErr: boom}, DefaultConfig())
		if _, err := e.RecordFailure(ctx, "192.0.2.1", at(1)); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("lazy unban save", func(t *testing.T) {
		store := &failingStore{
			saveErr: boom,
			data:    map[domain.RecordKey][]byte{domain.BlockedSubnetsKey: []byte(`{"192.0.2.0/24":10}`)},
		}
		e, _ := NewEngine(store, DefaultConfig())
		blocked, err := e.IsBlocked(ctx, "192.0.2.1", at(20))
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
		if blocked {
			t.Fatalf("expected blocked=false together with error")
		}
	})

	t.Run("corrupted record", func(t *testing.T) {
		store := &failingStore{
			data: map[domain.RecordKey][]byte{domain.BlockedSubnetsKey: []byte(`not json`)},
		}
		e, _ := NewEngine(store, DefaultConfig())
		if _, err := e.IsBlocked(ctx, "192.0.2.1", at(20)); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable for corrupted record, got %v", err)
		}
	})
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.FailThreshold = 0 }},
		{"sub-second window", func(c *Config) { c.FailureWindow = 500 * time.Millisecond }},
		{"zero ban duration", func(c *Config) { c.BanDuration = 0 }},
		{"fractional window", func(c *Config) { c.FailureWindow = 1500 * time.Millisecond }},
		{"fractional ban duration", func(c *Config) { c.BanDuration = time.Hour + 250*time.Millisecond }},
		{"mask too long", func(c *Config) { c.MaskLength = 33 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(&cfg)
			if _, err := NewEngine(mem.NewRecordsDB(), cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
