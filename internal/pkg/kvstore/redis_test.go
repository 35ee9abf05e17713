package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisStore(context.Background(), client, WithPrefix("otp:"))
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}

	return store, mr
}

func TestRedisStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if err := store.Set(ctx, "a@x.com", "4821", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "a@x.com")
	if err != nil || got != "4821" {
		t.Fatalf("Get: %q, %v", got, err)
	}

	ok, err := store.Exists(ctx, "a@x.com")
	if err != nil || !ok {
		t.Fatalf("Exists: %v, %v", ok, err)
	}

	ttl, err := store.TTL(ctx, "a@x.com")
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL: %v, %v", ttl, err)
	}

	if err := store.Delete(ctx, "a@x.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "a@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisStoreSetReplaces(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if err := store.Set(ctx, "a@x.com", "1111", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "a@x.com", "2222", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "a@x.com")
	if err != nil || got != "2222" {
		t.Fatalf("expected replacement value, got %q, %v", got, err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if err := store.Set(ctx, "b@x.com", "9999", 5*time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mr.FastForward(5*time.Minute + time.Second)

	if _, err := store.Get(ctx, "b@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
	if _, err := store.TTL(ctx, "b@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound TTL after expiry, got %v", err)
	}

	ok, err := store.Exists(ctx, "b@x.com")
	if err != nil || ok {
		t.Fatalf("expected entry gone, got %v, %v", ok, err)
	}
}

func TestRedisStoreDeleteAbsentIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Delete(context.Background(), "never-set"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}

func TestRedisStoreCompareAndDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if err := store.Set(ctx, "a@x.com", "4821", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ok, err := store.CompareAndDelete(ctx, "a@x.com", "0000")
	if err != nil || ok {
		t.Fatalf("mismatch must not delete: %v, %v", ok, err)
	}
	if got, err := store.Get(ctx, "a@x.com"); err != nil || got != "4821" {
		t.Fatalf("entry must survive mismatch: %q, %v", got, err)
	}

	ok, err = store.CompareAndDelete(ctx, "a@x.com", "4821")
	if err != nil || !ok {
		t.Fatalf("match must delete: %v, %v", ok, err)
	}
	if _, err := store.Get(ctx, "a@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after consume, got %v", err)
	}
}

func TestRedisStoreCompareAndDeleteConcurrent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if err := store.Set(ctx, "c@x.com", "7777", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan bool, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.CompareAndDelete(ctx, "c@x.com", "7777")
			if err != nil {
				t.Errorf("CompareAndDelete: %v", err)
				return
			}
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
}
