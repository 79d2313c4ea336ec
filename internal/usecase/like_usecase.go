package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/metrics"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// LikeUsecase handles the business logic for liking songs and playlists.
type LikeUsecase struct {
	likeRepo    contract.ILikeRepository
	contentRepo contract.IContentRepository
	userRepo    contract.IUserRepository
	counters    *CounterSync
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(
	likeRepo contract.ILikeRepository,
	contentRepo contract.IContentRepository,
	userRepo contract.IUserRepository,
	counters *CounterSync,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *LikeUsecase {
	return &LikeUsecase{
		likeRepo:    likeRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		counters:    counters,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// Like records that the actor liked the target and increments its like
// counter as one logical unit.
func (u *LikeUsecase) Like(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	if !targetType.IsEngagementTarget() {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	target, err := u.contentRepo.ResolveTarget(ctx, targetType, targetID)
	if err != nil {
		metrics.EngagementOps.WithLabelValues("like", outcomeLabel(err)).Inc()
		return nil, err
	}
	// A playlist the actor cannot see reads as not found, so the response
	// never confirms it exists.
	if !target.VisibleTo(actorID) {
		metrics.EngagementOps.WithLabelValues("like", "not_found").Inc()
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}

	like := &entity.Like{
		ID:         u.uuidGen.NewUUID(),
		UserID:     actorID,
		TargetID:   target.ID,
		TargetType: targetType,
		CreatedAt:  time.Now(),
	}

	// The unique index on (user_id, target_id, target_type) makes this an
	// insert-or-reject, so concurrent double-submits cannot create two
	// records.
	if err := u.likeRepo.Create(ctx, like); err != nil {
		metrics.EngagementOps.WithLabelValues("like", outcomeLabel(err)).Inc()
		if errors.Is(err, apperror.ErrConflict) {
			return nil, apperror.Newf(apperror.ErrConflict, "you have already liked this %s", targetType)
		}
		return nil, err
	}

	if err := u.counters.Increment(ctx, targetType, target.ID, entity.CounterLikes); err != nil {
		// Undo the record write so the counter invariant never drifts.
		metrics.CounterRollbacks.WithLabelValues("like").Inc()
		if delErr := u.likeRepo.Delete(ctx, like.ID); delErr != nil {
			u.logger.Errorf("like rollback failed for like %s on %s %s: %v", like.ID, targetType, target.ID, delErr)
		}
		metrics.EngagementOps.WithLabelValues("like", "error").Inc()
		return nil, err
	}

	metrics.EngagementOps.WithLabelValues("like", "ok").Inc()
	return like, nil
}

// Unlike removes the actor's like and decrements the like counter.
func (u *LikeUsecase) Unlike(ctx context.Context, actorID, targetID string, targetType entity.ContentType) error {
	if !targetType.IsEngagementTarget() {
		return apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	like, err := u.likeRepo.DeleteByTriple(ctx, actorID, targetID, targetType)
	if err != nil {
		metrics.EngagementOps.WithLabelValues("unlike", outcomeLabel(err)).Inc()
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.Newf(apperror.ErrNotFound, "you have not liked this %s", targetType)
		}
		return err
	}

	if err := u.counters.Decrement(ctx, targetType, targetID, entity.CounterLikes); err != nil {
		// Best-effort compensation: put the record back so the surviving
		// records still match the counter.
		metrics.CounterRollbacks.WithLabelValues("unlike").Inc()
		if createErr := u.likeRepo.Create(ctx, like); createErr != nil {
			u.logger.Errorf("unlike rollback failed for like %s on %s %s: %v", like.ID, targetType, targetID, createErr)
		}
		metrics.EngagementOps.WithLabelValues("unlike", "error").Inc()
		return err
	}

	metrics.EngagementOps.WithLabelValues("unlike", "ok").Inc()
	return nil
}

// IsLiked reports whether the actor has liked the target. No side effects.
func (u *LikeUsecase) IsLiked(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (bool, error) {
	if !targetType.IsEngagementTarget() {
		return false, apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	_, err := u.likeRepo.GetByTriple(ctx, actorID, targetID, targetType)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListLikes returns the likes on a target, newest first, with actor profiles
// joined on.
func (u *LikeUsecase) ListLikes(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Like, error) {
	if !targetType.IsEngagementTarget() {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid target type %q, must be 'song' or 'playlist'", targetType)
	}

	if _, err := u.contentRepo.ResolveTarget(ctx, targetType, targetID); err != nil {
		return nil, err
	}

	likes, err := u.likeRepo.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	u.attachActors(ctx, likes)
	return likes, nil
}

// ListLikedSongs returns the songs the actor liked, most recent like first.
func (u *LikeUsecase) ListLikedSongs(ctx context.Context, actorID string) ([]*entity.Song, error) {
	likes, err := u.likeRepo.ListByUser(ctx, actorID, entity.ContentTypeSong)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.TargetID)
	}
	songs, err := u.contentRepo.GetSongsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Song, len(songs))
	for _, s := range songs {
		byID[s.ID] = s
	}
	// Preserve like order; drop songs deleted since they were liked.
	ordered := make([]*entity.Song, 0, len(likes))
	for _, l := range likes {
		if s, ok := byID[l.TargetID]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

// ListLikedPlaylists returns the playlists the actor liked, most recent like
// first. Playlists that went private under another owner are filtered out.
func (u *LikeUsecase) ListLikedPlaylists(ctx context.Context, actorID string) ([]*entity.Playlist, error) {
	likes, err := u.likeRepo.ListByUser(ctx, actorID, entity.ContentTypePlaylist)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.TargetID)
	}
	playlists, err := u.contentRepo.GetPlaylistsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.Playlist, len(playlists))
	for _, p := range playlists {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Playlist, 0, len(likes))
	for _, l := range likes {
		if p, ok := byID[l.TargetID]; ok && p.VisibleTo(actorID) {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// attachActors joins user summaries onto the likes. A missing or failed
// lookup leaves Actor nil rather than failing the listing.
func (u *LikeUsecase) attachActors(ctx context.Context, likes []*entity.Like) {
	if len(likes) == 0 {
		return
	}
	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.UserID)
	}
	users, err := u.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		u.logger.Warnf("failed to join actors onto likes: %v", err)
		return
	}
	for _, l := range likes {
		if user, ok := users[l.UserID]; ok {
			l.Actor = user.Summary()
		}
	}
}

// outcomeLabel maps an error to its metrics outcome label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperror.ErrConflict):
		return "conflict"
	case errors.Is(err, apperror.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperror.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperror.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
