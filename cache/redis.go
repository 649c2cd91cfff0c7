package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "cc"

// Entries live under <prefix>:e:<key>, tag membership sets under
// <prefix>:t:<tag>. Redis owns TTL expiry; tag sets are cleaned on
// invalidation, so a member whose entry already expired is just a no-op DEL.
const invalidateTagScript = `
local members = redis.call("SMEMBERS", KEYS[1])
for i = 1, #members do
  redis.call("DEL", members[i])
end
redis.call("DEL", KEYS[1])
return #members
`

var invalidateTagLua = redis.NewScript(invalidateTagScript)

// RedisStore is a [Store] backed by a shared Redis instance, suitable for
// multi-process deployments where every frontend replica must observe the
// same invalidations.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore creates a RedisStore. An empty prefix selects the default.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
	}
}

func (s *RedisStore) entryKey(key string) string {
	return s.prefix + ":e:" + key
}

func (s *RedisStore) tagKey(tag Tag) string {
	return s.prefix + ":t:" + tag.String()
}

// Get returns the cached value or ErrEntryNotFound. Expiry is enforced by
// Redis TTL, so a hit is always fresh.
//
//	Performance: 1 Redis GET.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.redis.Get(ctx, s.entryKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return data, nil
}

// Set stores the value with TTL and registers the entry key in every tag set.
//
//	Performance: 1 SET + one SADD per tag, pipelined.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, tags []Tag, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	entryKey := s.entryKey(key)

	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryKey, value, ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, s.tagKey(tag), entryKey)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Invalidate deletes every entry registered under each tag, then the tag set
// itself. Each tag is processed atomically server-side, so a concurrent Get
// observes either the entry or its absence, never a torn state.
func (s *RedisStore) Invalidate(ctx context.Context, tags ...Tag) error {
	for _, tag := range tags {
		if err := invalidateTagLua.Run(ctx, s.redis, []string{s.tagKey(tag)}).Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}
	return nil
}

// Ping reports round-trip latency to the backing Redis.
func (s *RedisStore) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return time.Since(start), nil
}
