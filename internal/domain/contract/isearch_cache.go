package contract

import (
	"context"
)

// ISearchCache is an optional cache in front of the search engine. The cache
// key must include the requester so private-playlist visibility never leaks
// across actors. A nil implementation is valid (caching disabled).
type ISearchCache interface {
	// Get returns the cached serialized result set and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}
