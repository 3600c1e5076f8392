package factory

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
)

func TestRedisClients(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer s.Close()

	var cfg config.Database
	cfg.Redis.Address = s.Addr()
	cfg.Redis.Policer.PoolSize = 4
	cfg.Redis.Subscriber.PoolSize = 1

	rec, err := NewClientRecords(&cfg)
	if err != nil {
		t.Fatalf("NewClientRecords error: %v", err)
	}
	rec.Close()

	sub, err := NewClientSubscriber(&cfg)
	if err != nil {
		t.Fatalf("NewClientSubscriber error: %v", err)
	}
	sub.Close()
}

func TestRedisClients_Unreachable(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	addr := s.Addr()
	s.Close()

	var cfg config.Database
	cfg.Redis.Address = addr
	if _, err := NewClientRecords(&cfg); err == nil {
		t.Fatalf("expected ping error for stopped redis")
	}
}
