package contract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// ILikeRepository persists like records. Uniqueness of
// (user_id, target_id, target_type) is enforced by the store itself
// (insert-or-reject on a unique index), never by a read-then-write check.
type ILikeRepository interface {
	// Create inserts the like; a duplicate triple is apperror.ErrConflict.
	Create(ctx context.Context, like *entity.Like) error
	// Delete removes a like by id, used for compensation when the paired
	// counter step fails.
	Delete(ctx context.Context, id string) error
	// DeleteByTriple removes the like for (userID, targetID, targetType);
	// apperror.ErrNotFound when the actor never liked the target.
	DeleteByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error)

	GetByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error)
	// ListByTarget returns all likes on a target, newest first.
	ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Like, error)
	// ListByUser returns the user's likes of one target type, newest first.
	ListByUser(ctx context.Context, userID string, targetType entity.ContentType) ([]*entity.Like, error)
}
