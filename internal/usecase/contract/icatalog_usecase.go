package usecasecontract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// ICatalogUseCase exposes the read-only catalog views. All writes to songs,
// albums and playlists happen in the content service.
type ICatalogUseCase interface {
	ListSongs(ctx context.Context) ([]*entity.Song, error)
	GetSong(ctx context.Context, id string) (*entity.Song, error)
	ListAlbums(ctx context.Context) ([]*entity.Album, error)
	GetAlbum(ctx context.Context, id string) (*entity.Album, error)
	// GetPlaylist enforces visibility: a private playlist is
	// apperror.ErrNotFound for anyone but its owner.
	GetPlaylist(ctx context.Context, id, requesterID string) (*entity.Playlist, error)
	ListOwnPlaylists(ctx context.Context, actorID string) ([]*entity.Playlist, error)
}
