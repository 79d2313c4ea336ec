package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/usecase"
)

func newLikeFixture() (*usecase.LikeUsecase, *fakeLikeRepo, *fakeContentRepo) {
	likeRepo := &fakeLikeRepo{}
	contentRepo := newFakeContentRepo()
	userRepo := newFakeUserRepo(newTestUser("user-1", "alice"), newTestUser("user-2", "bob"))
	uc := usecase.NewLikeUsecase(likeRepo, contentRepo, userRepo, usecase.NewCounterSync(contentRepo), &fakeUUIDGen{}, fakeLogger{})
	return uc, likeRepo, contentRepo
}

func TestLike_IncrementsCounter(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	like, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)

	assert.NoError(t, err)
	assert.NotEmpty(t, like.ID)
	assert.Equal(t, "user-1", like.UserID)
	assert.Len(t, likeRepo.likes, 1)
	assert.Equal(t, int64(1), contentRepo.counter(entity.ContentTypeSong, "song-1", entity.CounterLikes))
}

func TestLike_DuplicateIsConflict(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	_, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)

	_, err = uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	// The rejected insert must not bump the counter a second time.
	assert.Len(t, likeRepo.likes, 1)
	assert.Equal(t, int64(1), contentRepo.counter(entity.ContentTypeSong, "song-1", entity.CounterLikes))
}

func TestLike_InvalidTargetType(t *testing.T) {
	uc, _, _ := newLikeFixture()

	_, err := uc.Like(context.Background(), "user-1", "album-1", entity.ContentTypeAlbum)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLike_TargetNotFound(t *testing.T) {
	uc, _, _ := newLikeFixture()

	_, err := uc.Like(context.Background(), "user-1", "missing", entity.ContentTypeSong)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLike_InvisiblePlaylistReadsAsNotFound(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.playlists["pl-1"] = newTestPlaylist("pl-1", "user-2", false)

	// A private playlist of another owner must look exactly like a missing
	// one, and must take no engagement.
	_, err := uc.Like(context.Background(), "user-1", "pl-1", entity.ContentTypePlaylist)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, likeRepo.likes)
	assert.Equal(t, int64(0), contentRepo.counter(entity.ContentTypePlaylist, "pl-1", entity.CounterLikes))

	// The owner can still like it.
	_, err = uc.Like(context.Background(), "user-2", "pl-1", entity.ContentTypePlaylist)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), contentRepo.counter(entity.ContentTypePlaylist, "pl-1", entity.CounterLikes))
}

func TestLike_CounterFailureRollsBackRecord(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)
	contentRepo.failCounterOnce = true

	_, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)

	assert.Error(t, err)
	assert.Empty(t, likeRepo.likes)
	assert.Equal(t, int64(0), contentRepo.counter(entity.ContentTypeSong, "song-1", entity.CounterLikes))
}

func TestUnlike_DecrementsCounter(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	_, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)

	err = uc.Unlike(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	assert.Empty(t, likeRepo.likes)
	assert.Equal(t, int64(0), contentRepo.counter(entity.ContentTypeSong, "song-1", entity.CounterLikes))
}

func TestUnlike_NotLiked(t *testing.T) {
	uc, _, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	err := uc.Unlike(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUnlike_CounterAlreadyZeroIsAbsorbed(t *testing.T) {
	uc, likeRepo, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)
	// A like written without its counter delta, as after a partial failure.
	likeRepo.likes = append(likeRepo.likes, &entity.Like{
		ID: "orphan", UserID: "user-1", TargetID: "song-1", TargetType: entity.ContentTypeSong,
	})

	err := uc.Unlike(context.Background(), "user-1", "song-1", entity.ContentTypeSong)

	assert.NoError(t, err)
	assert.Empty(t, likeRepo.likes)
	assert.Equal(t, int64(0), contentRepo.counter(entity.ContentTypeSong, "song-1", entity.CounterLikes))
}

func TestIsLiked(t *testing.T) {
	uc, _, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	liked, err := uc.IsLiked(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	assert.False(t, liked)

	_, err = uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)

	liked, err = uc.IsLiked(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	assert.True(t, liked)
}

func TestListLikes_NewestFirstWithActors(t *testing.T) {
	uc, _, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)

	_, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	_, err = uc.Like(context.Background(), "user-2", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)

	likes, err := uc.ListLikes(context.Background(), "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	assert.Len(t, likes, 2)
	assert.Equal(t, "user-2", likes[0].UserID)
	assert.Equal(t, "user-1", likes[1].UserID)
	assert.NotNil(t, likes[0].Actor)
	assert.Equal(t, "bob", likes[0].Actor.Name)
}

func TestListLikes_TargetNotFound(t *testing.T) {
	uc, _, _ := newLikeFixture()

	_, err := uc.ListLikes(context.Background(), "missing", entity.ContentTypeSong)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListLikedSongs_PreservesLikeOrderAndDropsDeleted(t *testing.T) {
	uc, _, contentRepo := newLikeFixture()
	contentRepo.songs["song-1"] = newTestSong("song-1", "Blue Train", true)
	contentRepo.songs["song-2"] = newTestSong("song-2", "Giant Steps", true)

	_, err := uc.Like(context.Background(), "user-1", "song-1", entity.ContentTypeSong)
	assert.NoError(t, err)
	_, err = uc.Like(context.Background(), "user-1", "song-2", entity.ContentTypeSong)
	assert.NoError(t, err)

	// song-1 removed from the catalog after it was liked.
	delete(contentRepo.songs, "song-1")

	songs, err := uc.ListLikedSongs(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, songs, 1)
	assert.Equal(t, "song-2", songs[0].ID)
}

func TestListLikedPlaylists_FiltersInvisible(t *testing.T) {
	uc, _, contentRepo := newLikeFixture()
	contentRepo.playlists["pl-public"] = newTestPlaylist("pl-public", "user-2", true)
	contentRepo.playlists["pl-own"] = newTestPlaylist("pl-own", "user-1", false)
	contentRepo.playlists["pl-private"] = newTestPlaylist("pl-private", "user-2", true)

	for _, id := range []string{"pl-public", "pl-own", "pl-private"} {
		_, err := uc.Like(context.Background(), "user-1", id, entity.ContentTypePlaylist)
		assert.NoError(t, err)
	}
	// pl-private went private under another owner after it was liked.
	contentRepo.playlists["pl-private"].IsPublic = false

	playlists, err := uc.ListLikedPlaylists(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, playlists, 2)
	assert.Equal(t, "pl-own", playlists[0].ID)
	assert.Equal(t, "pl-public", playlists[1].ID)
}
