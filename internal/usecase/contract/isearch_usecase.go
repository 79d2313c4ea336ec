package usecasecontract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// SearchResults holds the per-type result sets. A nil slice means the type
// was not requested; an empty non-nil slice means it was searched and
// nothing matched.
type SearchResults struct {
	Songs     []*entity.Song     `json:"songs,omitempty"`
	Albums    []*entity.Album    `json:"albums,omitempty"`
	Playlists []*entity.Playlist `json:"playlists,omitempty"`
}

type ISearchUseCase interface {
	// Search runs the two-stage query per requested type. typeFilter is
	// empty for all types; requesterID is empty for anonymous callers.
	// Empty queries and unknown type filters are apperror.ErrValidation.
	Search(ctx context.Context, query, typeFilter, requesterID string) (*SearchResults, error)
}
