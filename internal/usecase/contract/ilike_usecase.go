package usecasecontract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

type ILikeUseCase interface {
	// Like records that the actor liked the target; apperror.ErrConflict
	// when the actor already liked it, apperror.ErrNotFound when the target
	// does not exist or is not visible to the actor. The returned record is
	// the created like.
	Like(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (*entity.Like, error)
	// Unlike removes the actor's like; apperror.ErrNotFound when the actor
	// never liked the target.
	Unlike(ctx context.Context, actorID, targetID string, targetType entity.ContentType) error
	IsLiked(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (bool, error)
	// ListLikes returns all likes on a target, newest first, with the actor
	// summary joined on.
	ListLikes(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Like, error)
	// ListLikedSongs / ListLikedPlaylists return the content items the actor
	// liked, newest-like first. Liked playlists that became invisible to the
	// actor are filtered out.
	ListLikedSongs(ctx context.Context, actorID string) ([]*entity.Song, error)
	ListLikedPlaylists(ctx context.Context, actorID string) ([]*entity.Playlist, error)
}
