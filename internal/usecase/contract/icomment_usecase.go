package usecasecontract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

type ICommentUseCase interface {
	// AddComment creates a comment on the target; apperror.ErrValidation
	// when the content is empty after trimming, apperror.ErrNotFound when
	// the target does not exist or is not visible to the actor.
	AddComment(ctx context.Context, actorID, targetID string, targetType entity.ContentType, content string) (*entity.Comment, error)
	// UpdateComment replaces the content; only the author may update.
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error)
	// DeleteComment removes the comment; only the author may delete. The
	// counter step tolerates a target that was deleted externally.
	DeleteComment(ctx context.Context, actorID, commentID string) error
	// ListComments returns all comments on a target, newest first, with the
	// actor summary joined on.
	ListComments(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Comment, error)
}
