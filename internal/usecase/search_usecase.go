package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/metrics"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// SearchUsecase runs the tiered search: a ranked text stage per content
// type, falling back to a case-insensitive substring stage only when the
// ranked stage found nothing. A type's result set is always exactly one
// stage's output, never a union.
type SearchUsecase struct {
	contentRepo contract.IContentRepository
	cache       contract.ISearchCache // nil disables caching
	logger      usecasecontract.IAppLogger
}

// NewSearchUsecase creates and returns a new SearchUsecase instance.
func NewSearchUsecase(contentRepo contract.IContentRepository, cache contract.ISearchCache, logger usecasecontract.IAppLogger) *SearchUsecase {
	return &SearchUsecase{
		contentRepo: contentRepo,
		cache:       cache,
		logger:      logger,
	}
}

var _ usecasecontract.ISearchUseCase = (*SearchUsecase)(nil)

// Search executes the two-stage query per requested type.
func (u *SearchUsecase) Search(ctx context.Context, query, typeFilter, requesterID string) (*usecasecontract.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.New(apperror.ErrValidation, "search query is required")
	}

	var searchType entity.ContentType
	if typeFilter != "" {
		searchType = entity.ContentType(strings.ToLower(typeFilter))
		if !searchType.IsSearchable() {
			return nil, apperror.Newf(apperror.ErrValidation, "invalid search type %q, must be 'song', 'album' or 'playlist'", typeFilter)
		}
	}

	// The cache key carries the requester so private-playlist visibility
	// never leaks between actors.
	cacheKey := fmt.Sprintf("search:%s:%s:%s", searchType, requesterID, query)
	if cached, ok := u.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	results := &usecasecontract.SearchResults{}
	var err error

	if searchType == "" || searchType == entity.ContentTypeSong {
		if results.Songs, err = u.searchSongs(ctx, query); err != nil {
			return nil, err
		}
	}
	if searchType == "" || searchType == entity.ContentTypeAlbum {
		if results.Albums, err = u.searchAlbums(ctx, query); err != nil {
			return nil, err
		}
	}
	if searchType == "" || searchType == entity.ContentTypePlaylist {
		if results.Playlists, err = u.searchPlaylists(ctx, query, requesterID); err != nil {
			return nil, err
		}
	}

	u.cacheSet(ctx, cacheKey, results)
	return results, nil
}

func (u *SearchUsecase) searchSongs(ctx context.Context, query string) ([]*entity.Song, error) {
	songs, err := u.contentRepo.SearchSongsText(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(songs) > 0 {
		metrics.SearchStage.WithLabelValues("song", "text").Inc()
		return songs, nil
	}

	songs, err = u.contentRepo.SearchSongsSubstring(ctx, query)
	if err != nil {
		return nil, err
	}
	metrics.SearchStage.WithLabelValues("song", stageLabel(len(songs))).Inc()
	if songs == nil {
		songs = []*entity.Song{}
	}
	return songs, nil
}

func (u *SearchUsecase) searchAlbums(ctx context.Context, query string) ([]*entity.Album, error) {
	albums, err := u.contentRepo.SearchAlbumsText(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(albums) > 0 {
		metrics.SearchStage.WithLabelValues("album", "text").Inc()
		return albums, nil
	}

	albums, err = u.contentRepo.SearchAlbumsSubstring(ctx, query)
	if err != nil {
		return nil, err
	}
	metrics.SearchStage.WithLabelValues("album", stageLabel(len(albums))).Inc()
	if albums == nil {
		albums = []*entity.Album{}
	}
	return albums, nil
}

func (u *SearchUsecase) searchPlaylists(ctx context.Context, query, requesterID string) ([]*entity.Playlist, error) {
	playlists, err := u.contentRepo.SearchPlaylistsText(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	if len(playlists) > 0 {
		metrics.SearchStage.WithLabelValues("playlist", "text").Inc()
		return playlists, nil
	}

	playlists, err = u.contentRepo.SearchPlaylistsSubstring(ctx, query, requesterID)
	if err != nil {
		return nil, err
	}
	metrics.SearchStage.WithLabelValues("playlist", stageLabel(len(playlists))).Inc()
	if playlists == nil {
		playlists = []*entity.Playlist{}
	}
	return playlists, nil
}

func (u *SearchUsecase) cacheGet(ctx context.Context, key string) (*usecasecontract.SearchResults, bool) {
	if u.cache == nil {
		return nil, false
	}
	payload, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.logger.Warnf("search cache get failed: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var results usecasecontract.SearchResults
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, false
	}
	return &results, true
}

func (u *SearchUsecase) cacheSet(ctx context.Context, key string, results *usecasecontract.SearchResults) {
	if u.cache == nil {
		return
	}
	payload, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, payload); err != nil {
		u.logger.Warnf("search cache set failed: %v", err)
	}
}

func stageLabel(resultCount int) string {
	if resultCount > 0 {
		return "substring"
	}
	return "empty"
}
