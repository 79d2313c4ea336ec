package contract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// ICommentRepository persists comments on songs and playlists.
type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// UpdateContent replaces the comment body in place.
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error

	// ListByTarget returns all comments on a target, newest first.
	ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Comment, error)
}
