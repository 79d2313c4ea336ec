package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// fakeLogger discards everything.
type fakeLogger struct{}

func (fakeLogger) Debugf(format string, args ...interface{}) {}
func (fakeLogger) Infof(format string, args ...interface{})  {}
func (fakeLogger) Warnf(format string, args ...interface{})  {}
func (fakeLogger) Errorf(format string, args ...interface{}) {}
func (fakeLogger) Fatalf(format string, args ...interface{}) {}

// fakeUUIDGen hands out deterministic ids.
type fakeUUIDGen struct{ n int }

func (g *fakeUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

// fakeContentRepo is an in-memory stand-in for the catalog collections.
type fakeContentRepo struct {
	songs     map[string]*entity.Song
	albums    map[string]*entity.Album
	playlists map[string]*entity.Playlist

	counters        map[string]int64
	failCounterOnce bool

	textSongs     []*entity.Song
	subSongs      []*entity.Song
	textAlbums    []*entity.Album
	subAlbums     []*entity.Album
	textPlaylists []*entity.Playlist
	subPlaylists  []*entity.Playlist

	songTextCalls         int
	songSubCalls          int
	lastPlaylistRequester string
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		songs:     make(map[string]*entity.Song),
		albums:    make(map[string]*entity.Album),
		playlists: make(map[string]*entity.Playlist),
		counters:  make(map[string]int64),
	}
}

func counterKey(targetType entity.ContentType, targetID string, field entity.CounterField) string {
	return fmt.Sprintf("%s:%s:%s", targetType, targetID, field)
}

func (r *fakeContentRepo) counter(targetType entity.ContentType, targetID string, field entity.CounterField) int64 {
	return r.counters[counterKey(targetType, targetID, field)]
}

func (r *fakeContentRepo) targetExists(targetType entity.ContentType, targetID string) bool {
	switch targetType {
	case entity.ContentTypeSong:
		_, ok := r.songs[targetID]
		return ok
	case entity.ContentTypeAlbum:
		_, ok := r.albums[targetID]
		return ok
	case entity.ContentTypePlaylist:
		_, ok := r.playlists[targetID]
		return ok
	}
	return false
}

func (r *fakeContentRepo) ResolveTarget(ctx context.Context, targetType entity.ContentType, targetID string) (*entity.ContentRef, error) {
	switch targetType {
	case entity.ContentTypeSong:
		if s, ok := r.songs[targetID]; ok {
			return &entity.ContentRef{ID: s.ID, Type: targetType, Name: s.Name, Downloadable: s.Downloadable, FileURL: s.File}, nil
		}
	case entity.ContentTypePlaylist:
		if p, ok := r.playlists[targetID]; ok {
			return &entity.ContentRef{ID: p.ID, Type: targetType, Name: p.Name, OwnerID: p.OwnerID, IsPublic: p.IsPublic}, nil
		}
	}
	return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
}

func (r *fakeContentRepo) GetSongByID(ctx context.Context, id string) (*entity.Song, error) {
	if s, ok := r.songs[id]; ok {
		return s, nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "song not found")
}

func (r *fakeContentRepo) GetAlbumByID(ctx context.Context, id string) (*entity.Album, error) {
	if a, ok := r.albums[id]; ok {
		return a, nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "album not found")
}

func (r *fakeContentRepo) GetPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error) {
	if p, ok := r.playlists[id]; ok {
		return p, nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "playlist not found")
}

func (r *fakeContentRepo) ListSongs(ctx context.Context) ([]*entity.Song, error) {
	out := make([]*entity.Song, 0, len(r.songs))
	for _, s := range r.songs {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeContentRepo) ListAlbums(ctx context.Context) ([]*entity.Album, error) {
	out := make([]*entity.Album, 0, len(r.albums))
	for _, a := range r.albums {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeContentRepo) ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	out := []*entity.Playlist{}
	for _, p := range r.playlists {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) GetSongsByIDs(ctx context.Context, ids []string) ([]*entity.Song, error) {
	out := []*entity.Song{}
	for _, id := range ids {
		if s, ok := r.songs[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) GetPlaylistsByIDs(ctx context.Context, ids []string) ([]*entity.Playlist, error) {
	out := []*entity.Playlist{}
	for _, id := range ids {
		if p, ok := r.playlists[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) ApplyCounterDelta(ctx context.Context, targetType entity.ContentType, targetID string, field entity.CounterField, delta int64) error {
	if r.failCounterOnce {
		r.failCounterOnce = false
		return apperror.Internal(errors.New("write concern error"), "failed to update counter")
	}
	if !r.targetExists(targetType, targetID) {
		return apperror.New(apperror.ErrNotFound, "counter target not found")
	}
	key := counterKey(targetType, targetID, field)
	if delta < 0 && r.counters[key] <= 0 {
		return apperror.New(apperror.ErrNotFound, "counter target not found")
	}
	r.counters[key] += delta
	return nil
}

func (r *fakeContentRepo) SearchSongsText(ctx context.Context, query string) ([]*entity.Song, error) {
	r.songTextCalls++
	return r.textSongs, nil
}

func (r *fakeContentRepo) SearchSongsSubstring(ctx context.Context, query string) ([]*entity.Song, error) {
	r.songSubCalls++
	return r.subSongs, nil
}

func (r *fakeContentRepo) SearchAlbumsText(ctx context.Context, query string) ([]*entity.Album, error) {
	return r.textAlbums, nil
}

func (r *fakeContentRepo) SearchAlbumsSubstring(ctx context.Context, query string) ([]*entity.Album, error) {
	return r.subAlbums, nil
}

func (r *fakeContentRepo) SearchPlaylistsText(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error) {
	r.lastPlaylistRequester = requesterID
	return r.textPlaylists, nil
}

func (r *fakeContentRepo) SearchPlaylistsSubstring(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error) {
	r.lastPlaylistRequester = requesterID
	return r.subPlaylists, nil
}

// fakeLikeRepo keeps likes in insertion order and enforces triple uniqueness
// the way the unique index does.
type fakeLikeRepo struct {
	likes []*entity.Like
}

func (r *fakeLikeRepo) find(userID, targetID string, targetType entity.ContentType) int {
	for i, l := range r.likes {
		if l.UserID == userID && l.TargetID == targetID && l.TargetType == targetType {
			return i
		}
	}
	return -1
}

func (r *fakeLikeRepo) Create(ctx context.Context, like *entity.Like) error {
	if r.find(like.UserID, like.TargetID, like.TargetType) >= 0 {
		return apperror.New(apperror.ErrConflict, "like already exists")
	}
	r.likes = append(r.likes, like)
	return nil
}

func (r *fakeLikeRepo) Delete(ctx context.Context, id string) error {
	for i, l := range r.likes {
		if l.ID == id {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return nil
		}
	}
	return apperror.New(apperror.ErrNotFound, "like not found")
}

func (r *fakeLikeRepo) DeleteByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	i := r.find(userID, targetID, targetType)
	if i < 0 {
		return nil, apperror.New(apperror.ErrNotFound, "like not found")
	}
	like := r.likes[i]
	r.likes = append(r.likes[:i], r.likes[i+1:]...)
	return like, nil
}

func (r *fakeLikeRepo) GetByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	if i := r.find(userID, targetID, targetType); i >= 0 {
		return r.likes[i], nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "like not found")
}

func (r *fakeLikeRepo) ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Like, error) {
	out := []*entity.Like{}
	for i := len(r.likes) - 1; i >= 0; i-- {
		if l := r.likes[i]; l.TargetID == targetID && l.TargetType == targetType {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLikeRepo) ListByUser(ctx context.Context, userID string, targetType entity.ContentType) ([]*entity.Like, error) {
	out := []*entity.Like{}
	for i := len(r.likes) - 1; i >= 0; i-- {
		if l := r.likes[i]; l.UserID == userID && l.TargetType == targetType {
			out = append(out, l)
		}
	}
	return out, nil
}

// fakeCommentRepo keeps comments in insertion order.
type fakeCommentRepo struct {
	comments []*entity.Comment
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	for _, c := range r.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperror.New(apperror.ErrNotFound, "comment not found")
}

func (r *fakeCommentRepo) UpdateContent(ctx context.Context, id, content string) error {
	for _, c := range r.comments {
		if c.ID == id {
			c.Content = content
			return nil
		}
	}
	return apperror.New(apperror.ErrNotFound, "comment not found")
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return apperror.New(apperror.ErrNotFound, "comment not found")
}

func (r *fakeCommentRepo) ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Comment, error) {
	out := []*entity.Comment{}
	for i := len(r.comments) - 1; i >= 0; i-- {
		if c := r.comments[i]; c.TargetID == targetID && c.TargetType == targetType {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeDownloadRepo keeps the append-only download history.
type fakeDownloadRepo struct {
	downloads []*entity.Download
}

func (r *fakeDownloadRepo) Create(ctx context.Context, download *entity.Download) error {
	r.downloads = append(r.downloads, download)
	return nil
}

func (r *fakeDownloadRepo) Delete(ctx context.Context, id string) error {
	for i, d := range r.downloads {
		if d.ID == id {
			r.downloads = append(r.downloads[:i], r.downloads[i+1:]...)
			return nil
		}
	}
	return apperror.New(apperror.ErrNotFound, "download not found")
}

func (r *fakeDownloadRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Download, error) {
	out := []*entity.Download{}
	for i := len(r.downloads) - 1; i >= 0; i-- {
		if d := r.downloads[i]; d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeUserRepo is a read-only user lookup.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperror.New(apperror.ErrNotFound, "user not found")
}

func (r *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	out := make(map[string]*entity.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

// fakeSearchCache is an in-memory search cache.
type fakeSearchCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeSearchCache() *fakeSearchCache {
	return &fakeSearchCache{entries: make(map[string][]byte)}
}

func (c *fakeSearchCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *fakeSearchCache) Set(ctx context.Context, key string, payload []byte) error {
	c.sets++
	c.entries[key] = payload
	return nil
}

func newTestSong(id, name string, downloadable bool) *entity.Song {
	return &entity.Song{
		ID:           id,
		Name:         name,
		Artist:       "Test Artist",
		Album:        "Test Album",
		Genre:        "pop",
		File:         "https://cdn.example.com/" + id + ".mp3",
		Downloadable: downloadable,
	}
}

func newTestPlaylist(id, ownerID string, isPublic bool) *entity.Playlist {
	return &entity.Playlist{
		ID:       id,
		Name:     "Playlist " + id,
		OwnerID:  ownerID,
		IsPublic: isPublic,
	}
}

func newTestUser(id, name string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: name + "@example.com"}
}
