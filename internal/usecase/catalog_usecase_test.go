package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/usecase"
)

func TestGetPlaylist_PublicVisibleToAnyone(t *testing.T) {
	contentRepo := newFakeContentRepo()
	contentRepo.playlists["pl-1"] = newTestPlaylist("pl-1", "user-2", true)
	uc := usecase.NewCatalogUsecase(contentRepo)

	playlist, err := uc.GetPlaylist(context.Background(), "pl-1", "")
	assert.NoError(t, err)
	assert.Equal(t, "pl-1", playlist.ID)
}

func TestGetPlaylist_PrivateHiddenFromOthers(t *testing.T) {
	contentRepo := newFakeContentRepo()
	contentRepo.playlists["pl-1"] = newTestPlaylist("pl-1", "user-2", false)
	uc := usecase.NewCatalogUsecase(contentRepo)

	// Anonymous and non-owner both get a plain not-found, so the response
	// never confirms the playlist exists.
	_, err := uc.GetPlaylist(context.Background(), "pl-1", "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = uc.GetPlaylist(context.Background(), "pl-1", "user-1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPlaylist_PrivateVisibleToOwner(t *testing.T) {
	contentRepo := newFakeContentRepo()
	contentRepo.playlists["pl-1"] = newTestPlaylist("pl-1", "user-2", false)
	uc := usecase.NewCatalogUsecase(contentRepo)

	playlist, err := uc.GetPlaylist(context.Background(), "pl-1", "user-2")
	assert.NoError(t, err)
	assert.Equal(t, "pl-1", playlist.ID)
}

func TestListOwnPlaylists(t *testing.T) {
	contentRepo := newFakeContentRepo()
	contentRepo.playlists["pl-1"] = newTestPlaylist("pl-1", "user-1", false)
	contentRepo.playlists["pl-2"] = newTestPlaylist("pl-2", "user-2", true)
	uc := usecase.NewCatalogUsecase(contentRepo)

	playlists, err := uc.ListOwnPlaylists(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, playlists, 1)
	assert.Equal(t, "pl-1", playlists[0].ID)
}
