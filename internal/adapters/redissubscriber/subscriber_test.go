package redissubscriber

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
)

const channel = "failban.trusted.updated"

type fakeHolder struct {
	calls int32
	err   error
}

func (f *fakeHolder) ReloadSubnets(_ context.Context) error {
	atomic.AddInt32(&f.calls, 1)
	return f.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startSubscriber(t *testing.T, sub *SubnetUpdatesSubscriber, rdb *redis.Client) (context.CancelFunc, chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sub.Start(ctx)
	}()

	// wait until subscription is registered
	waitSub := time.After(500 * time.Millisecond)
	for {
		m, err := rdb.PubSubNumSub(context.Background(), channel).Result()
		if err == nil {
			if v, ok := m[channel]; ok && v > 0 {
				break
			}
		}
		select {
		case <-waitSub:
			t.Fatal("timeout waiting for subscription to be registered")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	return cancel, done
}

func waitCalls(t *testing.T, fh *fakeHolder, want int32) {
	t.Helper()
	wait := time.After(time.Second)
	for atomic.LoadInt32(&fh.calls) < want {
		select {
		case <-wait:
			t.Fatalf("timeout waiting for %d ReloadSubnets calls, got %d", want, atomic.LoadInt32(&fh.calls))
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func TestSubscriber_ReloadsOnMessageAndStopsOnContextCancel(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer s.Close()

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()
	fh := &fakeHolder{}
	sub := NewSubnetUpdatesSubscriber(rdb, fh, channel)
	cancel, done := startSubscriber(t, sub, rdb)

	if err := rdb.Publish(context.Background(), channel, "trusted").Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	waitCalls(t, fh, 1)

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context cancellation, got: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Start to exit after cancel")
	}
}

func TestSubscriber_KeepsRunningAfterReloadError(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer s.Close()

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()
	fh := &fakeHolder{err: errors.New("reload fail")}
	var out syncBuffer
	sub := NewSubnetUpdatesSubscriber(rdb, fh, channel).
		WithLogger(logger.NewWithWriter(&out, &config.Logger{Level: "info"}))
	cancel, done := startSubscriber(t, sub, rdb)
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := rdb.Publish(context.Background(), channel, "trusted").Err(); err != nil {
			t.Fatalf("publish error: %v", err)
		}
	}
	waitCalls(t, fh, 2)

	select {
	case err := <-done:
		t.Fatalf("subscriber must keep running after reload error, got %v", err)
	default:
	}
	if !strings.Contains(out.String(), "reload fail") {
		t.Fatalf("expected reload error to be logged, got: %s", out.String())
	}
}

func TestSubscriber_ChannelClosedReturnsError(t *testing.T) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run: %v", err)
	}
	defer s.Close()

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	fh := &fakeHolder{}
	sub := NewSubnetUpdatesSubscriber(rdb, fh, channel)
	cancel, done := startSubscriber(t, sub, rdb)
	defer cancel()

	// closing the client closes the pubsub channel
	if err := rdb.Close(); err != nil {
		t.Fatalf("rdb close: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, ErrChannelClosed) {
			t.Fatalf("unexpected error after channel closed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Start to return after channel close")
	}
}
