package usecase

import (
	"context"
	"time"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/metrics"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// DownloadUsecase tracks song downloads. History is append-only: records are
// never deleted and repeat downloads each count.
type DownloadUsecase struct {
	downloadRepo contract.IDownloadRepository
	contentRepo  contract.IContentRepository
	counters     *CounterSync
	uuidGen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

// NewDownloadUsecase creates and returns a new DownloadUsecase instance.
func NewDownloadUsecase(
	downloadRepo contract.IDownloadRepository,
	contentRepo contract.IContentRepository,
	counters *CounterSync,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *DownloadUsecase {
	return &DownloadUsecase{
		downloadRepo: downloadRepo,
		contentRepo:  contentRepo,
		counters:     counters,
		uuidGen:      uuidGen,
		logger:       logger,
	}
}

var _ usecasecontract.IDownloadUseCase = (*DownloadUsecase)(nil)

// RecordDownload appends a download record, increments the song's download
// counter and returns the stored file URL. The URL comes from the content
// item; this service never generates or signs it.
func (u *DownloadUsecase) RecordDownload(ctx context.Context, actorID, songID string) (string, error) {
	song, err := u.contentRepo.GetSongByID(ctx, songID)
	if err != nil {
		metrics.EngagementOps.WithLabelValues("download", outcomeLabel(err)).Inc()
		return "", err
	}
	if !song.Downloadable {
		metrics.EngagementOps.WithLabelValues("download", "forbidden").Inc()
		return "", apperror.New(apperror.ErrForbidden, "this song is not available for download")
	}

	download := &entity.Download{
		ID:           u.uuidGen.NewUUID(),
		UserID:       actorID,
		SongID:       song.ID,
		DownloadedAt: time.Now(),
	}
	if err := u.downloadRepo.Create(ctx, download); err != nil {
		metrics.EngagementOps.WithLabelValues("download", "error").Inc()
		return "", err
	}

	if err := u.counters.Increment(ctx, entity.ContentTypeSong, song.ID, entity.CounterDownloads); err != nil {
		metrics.CounterRollbacks.WithLabelValues("download").Inc()
		if delErr := u.downloadRepo.Delete(ctx, download.ID); delErr != nil {
			u.logger.Errorf("download rollback failed for download %s of song %s: %v", download.ID, song.ID, delErr)
		}
		metrics.EngagementOps.WithLabelValues("download", "error").Inc()
		return "", err
	}

	metrics.EngagementOps.WithLabelValues("download", "ok").Inc()
	return song.File, nil
}

// ListUserDownloads returns the actor's download history, newest first, with
// a song summary joined onto each entry. Entries whose song has since been
// deleted keep a nil summary.
func (u *DownloadUsecase) ListUserDownloads(ctx context.Context, actorID string) ([]*entity.Download, error) {
	downloads, err := u.downloadRepo.ListByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if len(downloads) == 0 {
		return downloads, nil
	}

	ids := make([]string, 0, len(downloads))
	for _, d := range downloads {
		ids = append(ids, d.SongID)
	}
	songs, err := u.contentRepo.GetSongsByIDs(ctx, ids)
	if err != nil {
		u.logger.Warnf("failed to join songs onto downloads: %v", err)
		return downloads, nil
	}

	byID := make(map[string]*entity.Song, len(songs))
	for _, s := range songs {
		byID[s.ID] = s
	}
	for _, d := range downloads {
		if s, ok := byID[d.SongID]; ok {
			d.Song = &entity.SongSummary{
				ID:       s.ID,
				Name:     s.Name,
				Image:    s.Image,
				Duration: s.Duration,
				Artist:   s.Artist,
				Album:    s.Album,
			}
		}
	}
	return downloads, nil
}
