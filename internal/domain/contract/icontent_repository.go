package contract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// SearchLimit caps every per-type search result set, for both the ranked
// stage and the substring fallback.
const SearchLimit = 20

// IContentRepository is the read-and-counter view of the catalog
// collections. Content lifecycle (creation, deletion, uploads) is owned by
// another service; this backend only resolves items, lists them and applies
// atomic counter deltas.
type IContentRepository interface {
	// ResolveTarget looks up a (targetType, targetID) pair in the matching
	// collection. Unknown types and missing ids are apperror.ErrNotFound.
	ResolveTarget(ctx context.Context, targetType entity.ContentType, targetID string) (*entity.ContentRef, error)

	GetSongByID(ctx context.Context, id string) (*entity.Song, error)
	GetAlbumByID(ctx context.Context, id string) (*entity.Album, error)
	GetPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error)

	ListSongs(ctx context.Context) ([]*entity.Song, error)
	ListAlbums(ctx context.Context) ([]*entity.Album, error)
	ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)

	GetSongsByIDs(ctx context.Context, ids []string) ([]*entity.Song, error)
	GetPlaylistsByIDs(ctx context.Context, ids []string) ([]*entity.Playlist, error)

	// ApplyCounterDelta runs an atomic $inc on the named counter. Negative
	// deltas only match documents whose counter is still positive, so a
	// decrement can never drive a counter below zero. A delta that matched
	// no document returns apperror.ErrNotFound; callers decide whether that
	// is fatal (increment) or absorbed (guarded decrement).
	ApplyCounterDelta(ctx context.Context, targetType entity.ContentType, targetID string, field entity.CounterField, delta int64) error

	// SearchSongs / SearchAlbums run the ranked text stage and report
	// whether it produced rows; the substring stage is a separate call so
	// the engine controls the fallback.
	SearchSongsText(ctx context.Context, query string) ([]*entity.Song, error)
	SearchSongsSubstring(ctx context.Context, query string) ([]*entity.Song, error)
	SearchAlbumsText(ctx context.Context, query string) ([]*entity.Album, error)
	SearchAlbumsSubstring(ctx context.Context, query string) ([]*entity.Album, error)

	// Playlist search takes the requester for the visibility pre-filter;
	// an empty requesterID means anonymous (public rows only).
	SearchPlaylistsText(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error)
	SearchPlaylistsSubstring(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error)
}
