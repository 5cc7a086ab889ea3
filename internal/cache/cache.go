// Package cache puts a short-TTL redis cache in front of the schedule
// fetcher. Purely a performance optimization: a miss or a broken redis falls
// straight through to the source chain.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/fetch"
	"github.com/imanhub/solat-server/internal/model"
)

// ErrMiss is returned by a Store when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the key/value slice of redis the cache needs; tests substitute an
// in-memory map.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// redisStore adapts a go-redis client to Store.
type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr, username, password string) Store {
	return &redisStore{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})}
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

func (r *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

// CachingFetcher wraps a schedule fetcher with a per-zone-per-day cache.
type CachingFetcher struct {
	next  fetch.Interface
	store Store
	ttl   time.Duration
}

func NewCachingFetcher(next fetch.Interface, store Store, ttl time.Duration) *CachingFetcher {
	return &CachingFetcher{next: next, store: store, ttl: ttl}
}

func scheduleKey(zone string, day time.Time) string {
	return fmt.Sprintf("solat:%s:%s", zone, day.Format("2006-01-02"))
}

// Fetch serves from the cache when it can, otherwise delegates and stores
// the result. Cache failures are logged and otherwise ignored.
func (c *CachingFetcher) Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error) {
	key := scheduleKey(zone, day)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var s model.Schedule
		if uerr := json.Unmarshal([]byte(raw), &s); uerr == nil && s.Validate() == nil {
			return s, nil
		}
		log.Warn().Str("key", key).Msg("discarding unreadable cached schedule")
	} else if !errors.Is(err, ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("schedule cache read failed")
	}

	s, err := c.next.Fetch(ctx, zone, day)
	if err != nil {
		return model.Schedule{}, err
	}

	if raw, merr := json.Marshal(s); merr == nil {
		if serr := c.store.Set(ctx, key, string(raw), c.ttl); serr != nil {
			log.Warn().Err(serr).Str("key", key).Msg("schedule cache write failed")
		}
	}
	return s, nil
}
