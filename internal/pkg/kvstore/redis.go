package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

const defaultOpTimeout = 3 * time.Second

// compareAndDeleteScript deletes the key only when its current value
// matches the expected one. Running it as a Lua script makes the
// get-compare-delete sequence atomic on the server, so two concurrent
// verifications of the same code cannot both succeed.
var compareAndDeleteScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore implements Store on a Redis client. Every operation runs
// under a short per-op timeout so a slow store fails fast instead of
// hanging inside a request cycle.
type RedisStore struct {
	client    *redis.Client
	prefix    string
	opTimeout time.Duration
}

// Option configures the RedisStore.
type Option func(*RedisStore)

// WithOpTimeout overrides the default per-operation timeout.
func WithOpTimeout(d time.Duration) Option {
	return func(s *RedisStore) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

// WithPrefix namespaces all keys written by this store.
func WithPrefix(prefix string) Option {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore verifies connectivity and returns the store. The
// initial ping is retried with fibonacci backoff to ride out transient
// dial failures during startup.
func NewRedisStore(ctx context.Context, client *redis.Client, opts ...Option) (*RedisStore, error) {
	s := &RedisStore{client: client, opTimeout: defaultOpTimeout}
	for _, opt := range opts {
		opt(s)
	}

	b := retry.WithMaxDuration(15*time.Second, retry.NewFibonacci(200*time.Millisecond))
	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return s, nil
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// Set stores value under key with the given TTL, replacing any prior
// entry for that key.
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// Get returns the stored value or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return val, nil
}

// Delete removes the entry; absent keys are a no-op.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// Exists reports whether an unexpired entry is present.
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return n == 1, nil
}

// TTL returns the remaining validity of the entry. Redis reports -2
// for a missing key and -1 for a key without expiry; entries written
// by this store always carry one.
func (s *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	d, err := s.client.TTL(ctx, s.key(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if d < 0 {
		return 0, ErrNotFound
	}

	return d, nil
}

// CompareAndDelete atomically deletes the entry when its value equals
// expect.
func (s *RedisStore) CompareAndDelete(ctx context.Context, key, expect string) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	n, err := compareAndDeleteScript.Run(ctx, s.client, []string{s.key(key)}, expect).Int()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return n == 1, nil
}
