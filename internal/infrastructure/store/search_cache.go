package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/melodix-app/melodix-backend/internal/domain/contract"
)

// SearchCacheStore is a Redis-backed cache for serialized search result
// sets. Entries are short-lived; the search engine owns the key format and
// keeps requester identity inside the key.
type SearchCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSearchCacheStore creates a new SearchCacheStore with the given TTL.
func NewSearchCacheStore(rdb *redis.Client, ttl time.Duration) *SearchCacheStore {
	return &SearchCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.ISearchCache = (*SearchCacheStore)(nil)

// Get returns the cached payload and whether it was found. A cache error is
// reported but callers treat it as a miss.
func (c *SearchCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload under the configured TTL.
func (c *SearchCacheStore) Set(ctx context.Context, key string, payload []byte) error {
	return c.rdb.Set(ctx, key, payload, c.ttl).Err()
}

// NewRedisFromURL parses a redis URL and returns a connected client.
func NewRedisFromURL(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
