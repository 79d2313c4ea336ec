package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/metrics"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// CommentUsecase handles commenting on songs and playlists.
type CommentUsecase struct {
	commentRepo contract.ICommentRepository
	contentRepo contract.IContentRepository
	userRepo    contract.IUserRepository
	counters    *CounterSync
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewCommentUsecase creates and returns a new CommentUsecase instance.
func NewCommentUsecase(
	commentRepo contract.ICommentRepository,
	contentRepo contract.IContentRepository,
	userRepo contract.IUserRepository,
	counters *CounterSync,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CommentUsecase {
	return &CommentUsecase{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		counters:    counters,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

var _ usecasecontract.ICommentUseCase = (*CommentUsecase)(nil)

// AddComment creates a comment on the target and increments its comment
// counter as one logical unit.
func (u *CommentUsecase) AddComment(ctx context.Context, actorID, targetID string, targetType entity.ContentType, content string) (*entity.Comment, error) {
	if !targetType.IsEngagementTarget() {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.ErrValidation, "comment content is required")
	}

	target, err := u.contentRepo.ResolveTarget(ctx, targetType, targetID)
	if err != nil {
		metrics.EngagementOps.WithLabelValues("add_comment", outcomeLabel(err)).Inc()
		return nil, err
	}
	// A playlist the actor cannot see reads as not found, so the response
	// never confirms it exists.
	if !target.VisibleTo(actorID) {
		metrics.EngagementOps.WithLabelValues("add_comment", "not_found").Inc()
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:         u.uuidGen.NewUUID(),
		UserID:     actorID,
		TargetID:   target.ID,
		TargetType: targetType,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.commentRepo.Create(ctx, comment); err != nil {
		metrics.EngagementOps.WithLabelValues("add_comment", "error").Inc()
		return nil, err
	}

	if err := u.counters.Increment(ctx, targetType, target.ID, entity.CounterComments); err != nil {
		metrics.CounterRollbacks.WithLabelValues("add_comment").Inc()
		if delErr := u.commentRepo.Delete(ctx, comment.ID); delErr != nil {
			u.logger.Errorf("comment rollback failed for comment %s on %s %s: %v", comment.ID, targetType, target.ID, delErr)
		}
		metrics.EngagementOps.WithLabelValues("add_comment", "error").Inc()
		return nil, err
	}

	u.attachActor(ctx, comment)
	metrics.EngagementOps.WithLabelValues("add_comment", "ok").Inc()
	return comment, nil
}

// UpdateComment replaces the comment content. Only the author may update,
// and the counters are untouched.
func (u *CommentUsecase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.ErrValidation, "comment content is required")
	}

	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, apperror.New(apperror.ErrForbidden, "you don't have permission to update this comment")
	}

	if err := u.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now()
	u.attachActor(ctx, comment)
	return comment, nil
}

// DeleteComment removes the comment and decrements the comment counter of
// its target. A target deleted externally since the comment was written
// makes the counter step a no-op, not a failure.
func (u *CommentUsecase) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		metrics.EngagementOps.WithLabelValues("delete_comment", outcomeLabel(err)).Inc()
		return err
	}
	if comment.UserID != actorID {
		metrics.EngagementOps.WithLabelValues("delete_comment", "forbidden").Inc()
		return apperror.New(apperror.ErrForbidden, "you don't have permission to delete this comment")
	}

	if err := u.commentRepo.Delete(ctx, commentID); err != nil {
		metrics.EngagementOps.WithLabelValues("delete_comment", outcomeLabel(err)).Inc()
		return err
	}

	if err := u.counters.Decrement(ctx, comment.TargetType, comment.TargetID, entity.CounterComments); err != nil {
		metrics.CounterRollbacks.WithLabelValues("delete_comment").Inc()
		if createErr := u.commentRepo.Create(ctx, comment); createErr != nil {
			u.logger.Errorf("delete-comment rollback failed for comment %s: %v", comment.ID, createErr)
		}
		metrics.EngagementOps.WithLabelValues("delete_comment", "error").Inc()
		return err
	}

	metrics.EngagementOps.WithLabelValues("delete_comment", "ok").Inc()
	return nil
}

// ListComments returns the comments on a target, newest first, with actor
// profiles joined on.
func (u *CommentUsecase) ListComments(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Comment, error) {
	if !targetType.IsEngagementTarget() {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	if _, err := u.contentRepo.ResolveTarget(ctx, targetType, targetID); err != nil {
		return nil, err
	}

	comments, err := u.commentRepo.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	if len(comments) > 0 {
		ids := make([]string, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.UserID)
		}
		users, err := u.userRepo.GetUsersByIDs(ctx, ids)
		if err != nil {
			u.logger.Warnf("failed to join actors onto comments: %v", err)
		} else {
			for _, c := range comments {
				if user, ok := users[c.UserID]; ok {
					c.Actor = user.Summary()
				}
			}
		}
	}
	return comments, nil
}

func (u *CommentUsecase) attachActor(ctx context.Context, comment *entity.Comment) {
	user, err := u.userRepo.GetUserByID(ctx, comment.UserID)
	if err != nil {
		u.logger.Warnf("failed to join actor onto comment %s: %v", comment.ID, err)
		return
	}
	comment.Actor = user.Summary()
}
