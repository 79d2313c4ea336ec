package contract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// IDownloadRepository persists the append-only download history. Download
// records are never deleted and the same user may download the same song
// repeatedly.
type IDownloadRepository interface {
	Create(ctx context.Context, download *entity.Download) error
	// Delete exists only as the compensation step for a failed counter
	// delta; it is not part of any caller-facing operation.
	Delete(ctx context.Context, id string) error
	// ListByUser returns the user's download history, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Download, error)
}
