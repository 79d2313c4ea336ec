package usecase

import (
	"context"
	"errors"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// CounterSync centralizes the denormalized-counter contract so every
// mutation path applies identical semantics. It holds no state of its own.
type CounterSync struct {
	contents contract.IContentRepository
}

// NewCounterSync creates a CounterSync over the catalog store.
func NewCounterSync(contents contract.IContentRepository) *CounterSync {
	return &CounterSync{contents: contents}
}

// Increment applies +1 to the named counter. A missing target is
// apperror.ErrNotFound and the caller must roll back its record write.
func (s *CounterSync) Increment(ctx context.Context, targetType entity.ContentType, targetID string, field entity.CounterField) error {
	return s.contents.ApplyCounterDelta(ctx, targetType, targetID, field, 1)
}

// Decrement applies -1 to the named counter. The delta is guarded at the
// store so a counter never drops below zero; a non-matching decrement
// (counter already zero, or the target deleted externally) is absorbed as a
// successful no-op rather than reported.
func (s *CounterSync) Decrement(ctx context.Context, targetType entity.ContentType, targetID string, field entity.CounterField) error {
	err := s.contents.ApplyCounterDelta(ctx, targetType, targetID, field, -1)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	return err
}
