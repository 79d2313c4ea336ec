package usecase

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// CatalogUsecase exposes read-only catalog views. Writes to songs, albums
// and playlists belong to the content service.
type CatalogUsecase struct {
	contentRepo contract.IContentRepository
}

// NewCatalogUsecase creates and returns a new CatalogUsecase instance.
func NewCatalogUsecase(contentRepo contract.IContentRepository) *CatalogUsecase {
	return &CatalogUsecase{contentRepo: contentRepo}
}

var _ usecasecontract.ICatalogUseCase = (*CatalogUsecase)(nil)

func (u *CatalogUsecase) ListSongs(ctx context.Context) ([]*entity.Song, error) {
	return u.contentRepo.ListSongs(ctx)
}

func (u *CatalogUsecase) GetSong(ctx context.Context, id string) (*entity.Song, error) {
	return u.contentRepo.GetSongByID(ctx, id)
}

func (u *CatalogUsecase) ListAlbums(ctx context.Context) ([]*entity.Album, error) {
	return u.contentRepo.ListAlbums(ctx)
}

func (u *CatalogUsecase) GetAlbum(ctx context.Context, id string) (*entity.Album, error) {
	return u.contentRepo.GetAlbumByID(ctx, id)
}

// GetPlaylist returns the playlist only when the requester may see it. A
// private playlist is reported as not found to anyone but its owner so the
// response does not confirm its existence.
func (u *CatalogUsecase) GetPlaylist(ctx context.Context, id, requesterID string) (*entity.Playlist, error) {
	playlist, err := u.contentRepo.GetPlaylistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !playlist.VisibleTo(requesterID) {
		return nil, apperror.New(apperror.ErrNotFound, "playlist not found")
	}
	return playlist, nil
}

func (u *CatalogUsecase) ListOwnPlaylists(ctx context.Context, actorID string) ([]*entity.Playlist, error) {
	return u.contentRepo.ListPlaylistsByOwner(ctx, actorID)
}
