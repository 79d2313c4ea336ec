package usecasecontract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

type IDownloadUseCase interface {
	// RecordDownload appends a download record and returns the song's file
	// URL; apperror.ErrForbidden when the song is not downloadable.
	RecordDownload(ctx context.Context, actorID, songID string) (downloadURL string, err error)
	// ListUserDownloads returns the actor's download history, newest first,
	// with a song summary joined onto each entry.
	ListUserDownloads(ctx context.Context, actorID string) ([]*entity.Download, error)
}
