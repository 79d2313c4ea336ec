package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// songSearchFields and albumSearchFields are the field sets the substring
// stage ORs over; the text stage uses the collections' text indexes over the
// same fields (see EnsureIndexes).
var (
	songSearchFields     = []string{"name", "desc", "album", "artist", "genre"}
	albumSearchFields    = []string{"name", "desc", "artist", "genre"}
	playlistSearchFields = []string{"name", "description"}
)

// ContentRepository is the MongoDB implementation of IContentRepository over
// the songs, albums and playlists collections.
type ContentRepository struct {
	songs     *mongo.Collection
	albums    *mongo.Collection
	playlists *mongo.Collection
}

// NewContentRepository creates and returns a new ContentRepository instance.
func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		songs:     db.Collection("songs"),
		albums:    db.Collection("albums"),
		playlists: db.Collection("playlists"),
	}
}

var _ contract.IContentRepository = (*ContentRepository)(nil)

// collectionFor maps a content type to its collection. Unknown types return
// nil; callers translate that to a not-found.
func (r *ContentRepository) collectionFor(targetType entity.ContentType) *mongo.Collection {
	switch targetType {
	case entity.ContentTypeSong:
		return r.songs
	case entity.ContentTypeAlbum:
		return r.albums
	case entity.ContentTypePlaylist:
		return r.playlists
	default:
		return nil
	}
}

// ResolveTarget looks up a (targetType, targetID) pair in the matching
// collection and returns the fields engagement operations need.
func (r *ContentRepository) ResolveTarget(ctx context.Context, targetType entity.ContentType, targetID string) (*entity.ContentRef, error) {
	switch targetType {
	case entity.ContentTypeSong:
		song, err := r.GetSongByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		return &entity.ContentRef{
			ID:           song.ID,
			Type:         entity.ContentTypeSong,
			Name:         song.Name,
			IsPublic:     true,
			Downloadable: song.Downloadable,
			FileURL:      song.File,
		}, nil
	case entity.ContentTypePlaylist:
		playlist, err := r.GetPlaylistByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		return &entity.ContentRef{
			ID:       playlist.ID,
			Type:     entity.ContentTypePlaylist,
			Name:     playlist.Name,
			OwnerID:  playlist.OwnerID,
			IsPublic: playlist.IsPublic,
		}, nil
	case entity.ContentTypeAlbum:
		album, err := r.GetAlbumByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		return &entity.ContentRef{
			ID:       album.ID,
			Type:     entity.ContentTypeAlbum,
			Name:     album.Name,
			IsPublic: true,
		}, nil
	default:
		return nil, apperror.Newf(apperror.ErrNotFound, "unknown content type %q", targetType)
	}
}

// GetSongByID retrieves a single song by its id.
func (r *ContentRepository) GetSongByID(ctx context.Context, id string) (*entity.Song, error) {
	var song entity.Song
	err := r.songs.FindOne(ctx, bson.M{"_id": id}).Decode(&song)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "song not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve song")
	}
	return &song, nil
}

// GetAlbumByID retrieves a single album by its id.
func (r *ContentRepository) GetAlbumByID(ctx context.Context, id string) (*entity.Album, error) {
	var album entity.Album
	err := r.albums.FindOne(ctx, bson.M{"_id": id}).Decode(&album)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "album not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve album")
	}
	return &album, nil
}

// GetPlaylistByID retrieves a single playlist by its id.
func (r *ContentRepository) GetPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.playlists.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "playlist not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve playlist")
	}
	return &playlist, nil
}

// ListSongs returns all songs, newest first.
func (r *ContentRepository) ListSongs(ctx context.Context) ([]*entity.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.songs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list songs")
	}
	defer cursor.Close(ctx)

	var songs []*entity.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, apperror.Internal(err, "failed to decode songs")
	}
	return songs, nil
}

// ListAlbums returns all albums, newest first.
func (r *ContentRepository) ListAlbums(ctx context.Context) ([]*entity.Album, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.albums.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list albums")
	}
	defer cursor.Close(ctx)

	var albums []*entity.Album
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, apperror.Internal(err, "failed to decode albums")
	}
	return albums, nil
}

// ListPlaylistsByOwner returns the owner's playlists, newest first.
func (r *ContentRepository) ListPlaylistsByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.playlists.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list playlists")
	}
	defer cursor.Close(ctx)

	var playlists []*entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, apperror.Internal(err, "failed to decode playlists")
	}
	return playlists, nil
}

// GetSongsByIDs fetches a batch of songs. Missing ids are skipped.
func (r *ContentRepository) GetSongsByIDs(ctx context.Context, ids []string) ([]*entity.Song, error) {
	if len(ids) == 0 {
		return []*entity.Song{}, nil
	}
	cursor, err := r.songs.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperror.Internal(err, "failed to fetch songs")
	}
	defer cursor.Close(ctx)

	var songs []*entity.Song
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, apperror.Internal(err, "failed to decode songs")
	}
	return songs, nil
}

// GetPlaylistsByIDs fetches a batch of playlists. Missing ids are skipped.
func (r *ContentRepository) GetPlaylistsByIDs(ctx context.Context, ids []string) ([]*entity.Playlist, error) {
	if len(ids) == 0 {
		return []*entity.Playlist{}, nil
	}
	cursor, err := r.playlists.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperror.Internal(err, "failed to fetch playlists")
	}
	defer cursor.Close(ctx)

	var playlists []*entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, apperror.Internal(err, "failed to decode playlists")
	}
	return playlists, nil
}

// ApplyCounterDelta runs an atomic $inc on the named counter. Decrements are
// guarded by a {field: {$gt: 0}} filter so the counter is clamped at zero at
// the store itself.
func (r *ContentRepository) ApplyCounterDelta(ctx context.Context, targetType entity.ContentType, targetID string, field entity.CounterField, delta int64) error {
	collection := r.collectionFor(targetType)
	if collection == nil {
		return apperror.Newf(apperror.ErrNotFound, "unknown content type %q", targetType)
	}

	filter := bson.M{"_id": targetID}
	if delta < 0 {
		filter[string(field)] = bson.M{"$gt": 0}
	}
	update := bson.M{"$inc": bson.M{string(field): delta}}

	res, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return apperror.Internal(err, fmt.Sprintf("failed to apply %s delta", field))
	}
	if res.MatchedCount == 0 {
		return apperror.Newf(apperror.ErrNotFound, "%s not found or %s already zero", targetType, field)
	}
	return nil
}

// textStage runs a $text query ranked by textScore, ties broken by
// created_at descending, capped at SearchLimit. The visibility pre-filter,
// when present, is part of the query itself so ranking and capping only ever
// see eligible rows.
func textStage(ctx context.Context, collection *mongo.Collection, query string, visibility bson.M, out interface{}) error {
	filter := bson.M{"$text": bson.M{"$search": query}}
	for k, v := range visibility {
		filter[k] = v
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "created_at", Value: -1},
		}).
		SetLimit(contract.SearchLimit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return apperror.Internal(err, "text search failed")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperror.Internal(err, "failed to decode text search results")
	}
	return nil
}

// substringStage runs a case-insensitive $regex OR over the field set,
// ordered by created_at descending, capped at SearchLimit.
func substringStage(ctx context.Context, collection *mongo.Collection, query string, fields []string, visibility bson.M, out interface{}) error {
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": query, "$options": "i"}})
	}
	filter := bson.M{"$or": or}
	if len(visibility) > 0 {
		// $and keeps the field OR and the visibility OR from colliding.
		filter = bson.M{"$and": bson.A{bson.M{"$or": or}, visibility}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(contract.SearchLimit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return apperror.Internal(err, "substring search failed")
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperror.Internal(err, "failed to decode substring search results")
	}
	return nil
}

// playlistVisibilityFilter is the pre-filter applied before ranking and
// capping in both stages: public rows, plus the requester's own rows when a
// requester is present.
func playlistVisibilityFilter(requesterID string) bson.M {
	if requesterID == "" {
		return bson.M{"is_public": true}
	}
	return bson.M{"$or": bson.A{
		bson.M{"is_public": true},
		bson.M{"owner_id": requesterID},
	}}
}

func (r *ContentRepository) SearchSongsText(ctx context.Context, query string) ([]*entity.Song, error) {
	var songs []*entity.Song
	if err := textStage(ctx, r.songs, query, nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *ContentRepository) SearchSongsSubstring(ctx context.Context, query string) ([]*entity.Song, error) {
	var songs []*entity.Song
	if err := substringStage(ctx, r.songs, query, songSearchFields, nil, &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *ContentRepository) SearchAlbumsText(ctx context.Context, query string) ([]*entity.Album, error) {
	var albums []*entity.Album
	if err := textStage(ctx, r.albums, query, nil, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *ContentRepository) SearchAlbumsSubstring(ctx context.Context, query string) ([]*entity.Album, error) {
	var albums []*entity.Album
	if err := substringStage(ctx, r.albums, query, albumSearchFields, nil, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *ContentRepository) SearchPlaylistsText(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error) {
	var playlists []*entity.Playlist
	if err := textStage(ctx, r.playlists, query, playlistVisibilityFilter(requesterID), &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *ContentRepository) SearchPlaylistsSubstring(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error) {
	var playlists []*entity.Playlist
	if err := substringStage(ctx, r.playlists, query, playlistSearchFields, playlistVisibilityFilter(requesterID), &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}
