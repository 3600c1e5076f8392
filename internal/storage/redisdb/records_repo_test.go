package redisdb

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client, func()) {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	cleanup := func() {
		client.Close()
		s.Close()
	}
	return s, client, cleanup
}

func TestRecordsRepo_LoadMissing(t *testing.T) {
	_, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewRecordsRepo(client, "failban:")
	data, err := repo.Load(context.Background(), domain.FailedAttemptsKey)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil for missing key, got %q", data)
	}
}

func TestRecordsRepo_SaveAndLoad(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewRecordsRepo(client, "failban:")
	ctx := context.Background()
	payload := []byte(`{"203.0.113.0/24":1700003600}`)

	if err := repo.Save(ctx, domain.BlockedSubnetsKey, payload); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := s.Get("failban:blocked_subnets")
	if err != nil {
		t.Fatalf("expected prefixed key in redis: %v", err)
	}
	if got != string(payload) {
		t.Fatalf("unexpected raw value %q", got)
	}
	if ttl := s.TTL("failban:blocked_subnets"); ttl != 0 {
		t.Fatalf("expected no TTL, got %s", ttl)
	}

	data, err := repo.Load(ctx, domain.BlockedSubnetsKey)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("unexpected record %q", data)
	}

	// overwrite replaces whole record
	if err := repo.Save(ctx, domain.BlockedSubnetsKey, []byte(`{}`)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data, _ = repo.Load(ctx, domain.BlockedSubnetsKey)
	if string(data) != `{}` {
		t.Fatalf("expected overwritten record, got %q", data)
	}
}

func TestRecordsRepo_Unavailable(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	repo := NewRecordsRepo(client, "failban:")
	s.Close()

	if _, err := repo.Load(context.Background(), domain.FailedAttemptsKey); err == nil {
		t.Fatalf("expected error when redis is down")
	}
	if err := repo.Save(context.Background(), domain.FailedAttemptsKey, []byte(`{}`)); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}

func TestRecordsRepo_LockIsExclusive(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	first := NewRecordsRepo(client, "failban:")
	second := NewRecordsRepo(client, "failban:")
	ctx := context.Background()

	unlock, err := first.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}
	if !s.Exists("failban:records_lock") {
		t.Fatalf("expected lock key in redis")
	}
	if ttl := s.TTL("failban:records_lock"); ttl != DefaultLockTTL {
		t.Fatalf("expected lock TTL %v, got %v", DefaultLockTTL, ttl)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	if _, err := second.Lock(waitCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected second Lock to wait until deadline, got %v", err)
	}

	unlock()
	if s.Exists("failban:records_lock") {
		t.Fatalf("expected lock key removed after unlock")
	}

	unlock2, err := second.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock after release returned error: %v", err)
	}
	unlock2()
}

func TestRecordsRepo_ExpiredLockIsNotReleasedByOldOwner(t *testing.T) {
	s, client, cleanup := setupMiniredis(t)
	defer cleanup()

	first := NewRecordsRepo(client, "failban:")
	second := NewRecordsRepo(client, "failban:")
	ctx := context.Background()

	unlockFirst, err := first.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}
	s.FastForward(DefaultLockTTL + time.Second)

	unlockSecond, err := second.Lock(ctx)
	if err != nil {
		t.Fatalf("Lock after TTL returned error: %v", err)
	}
	owner, _ := s.Get("failban:records_lock")

	unlockFirst()
	if got, _ := s.Get("failban:records_lock"); got != owner {
		t.Fatalf("stale unlock removed lock of another owner")
	}

	unlockSecond()
	if s.Exists("failban:records_lock") {
		t.Fatalf("expected lock key removed after owner unlock")
	}
}
