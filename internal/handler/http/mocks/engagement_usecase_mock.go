package mocks

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface
type MockLikeUsecase struct {
	// Control mock behavior
	ShouldConflictLike  bool
	ShouldNotFindTarget bool
	ShouldNotFindLike   bool
	MockLiked           bool

	// Return values
	MockLike  entity.Like
	MockSongs []*entity.Song
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{
		MockLike: entity.Like{
			ID:         "mock-like-id",
			UserID:     "mock-user-id",
			TargetID:   "mock-song-id",
			TargetType: entity.ContentTypeSong,
		},
	}
}

func (m *MockLikeUsecase) Like(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	if m.ShouldNotFindTarget {
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}
	if m.ShouldConflictLike {
		return nil, apperror.Newf(apperror.ErrConflict, "you have already liked this %s", targetType)
	}
	return &m.MockLike, nil
}

func (m *MockLikeUsecase) Unlike(ctx context.Context, actorID, targetID string, targetType entity.ContentType) error {
	if m.ShouldNotFindLike {
		return apperror.Newf(apperror.ErrNotFound, "you have not liked this %s", targetType)
	}
	return nil
}

func (m *MockLikeUsecase) IsLiked(ctx context.Context, actorID, targetID string, targetType entity.ContentType) (bool, error) {
	return m.MockLiked, nil
}

func (m *MockLikeUsecase) ListLikes(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Like, error) {
	if m.ShouldNotFindTarget {
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}
	return []*entity.Like{&m.MockLike}, nil
}

func (m *MockLikeUsecase) ListLikedSongs(ctx context.Context, actorID string) ([]*entity.Song, error) {
	return m.MockSongs, nil
}

func (m *MockLikeUsecase) ListLikedPlaylists(ctx context.Context, actorID string) ([]*entity.Playlist, error) {
	return []*entity.Playlist{}, nil
}

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	ShouldNotFindTarget  bool
	ShouldNotFindComment bool
	ShouldForbid         bool

	MockComment entity.Comment
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		MockComment: entity.Comment{
			ID:         "mock-comment-id",
			UserID:     "mock-user-id",
			TargetID:   "mock-song-id",
			TargetType: entity.ContentTypeSong,
			Content:    "mock comment content",
		},
	}
}

func (m *MockCommentUsecase) AddComment(ctx context.Context, actorID, targetID string, targetType entity.ContentType, content string) (*entity.Comment, error) {
	if m.ShouldNotFindTarget {
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}
	return &m.MockComment, nil
}

func (m *MockCommentUsecase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	if m.ShouldNotFindComment {
		return nil, apperror.New(apperror.ErrNotFound, "comment not found")
	}
	if m.ShouldForbid {
		return nil, apperror.New(apperror.ErrForbidden, "you don't have permission to update this comment")
	}
	return &m.MockComment, nil
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, actorID, commentID string) error {
	if m.ShouldNotFindComment {
		return apperror.New(apperror.ErrNotFound, "comment not found")
	}
	if m.ShouldForbid {
		return apperror.New(apperror.ErrForbidden, "you don't have permission to delete this comment")
	}
	return nil
}

func (m *MockCommentUsecase) ListComments(ctx context.Context, targetID string, targetType entity.ContentType) ([]*entity.Comment, error) {
	if m.ShouldNotFindTarget {
		return nil, apperror.Newf(apperror.ErrNotFound, "%s not found", targetType)
	}
	return []*entity.Comment{&m.MockComment}, nil
}

// MockDownloadUsecase is a mock implementation of the IDownloadUseCase interface
type MockDownloadUsecase struct {
	ShouldForbidDownload bool
	ShouldNotFindSong    bool

	MockDownloadURL string
}

var _ usecasecontract.IDownloadUseCase = (*MockDownloadUsecase)(nil)

func NewMockDownloadUsecase() *MockDownloadUsecase {
	return &MockDownloadUsecase{MockDownloadURL: "https://cdn.example.com/mock-song.mp3"}
}

func (m *MockDownloadUsecase) RecordDownload(ctx context.Context, actorID, songID string) (string, error) {
	if m.ShouldNotFindSong {
		return "", apperror.New(apperror.ErrNotFound, "song not found")
	}
	if m.ShouldForbidDownload {
		return "", apperror.New(apperror.ErrForbidden, "this song is not available for download")
	}
	return m.MockDownloadURL, nil
}

func (m *MockDownloadUsecase) ListUserDownloads(ctx context.Context, actorID string) ([]*entity.Download, error) {
	return []*entity.Download{}, nil
}

// MockSearchUsecase is a mock implementation of the ISearchUseCase interface
type MockSearchUsecase struct {
	ShouldFailValidation bool

	MockResults usecasecontract.SearchResults
	LastQuery   string
	LastType    string
	LastActor   string
}

var _ usecasecontract.ISearchUseCase = (*MockSearchUsecase)(nil)

func NewMockSearchUsecase() *MockSearchUsecase {
	return &MockSearchUsecase{
		MockResults: usecasecontract.SearchResults{
			Songs: []*entity.Song{{ID: "mock-song-id", Name: "Mock Song"}},
		},
	}
}

func (m *MockSearchUsecase) Search(ctx context.Context, query, typeFilter, requesterID string) (*usecasecontract.SearchResults, error) {
	m.LastQuery, m.LastType, m.LastActor = query, typeFilter, requesterID
	if m.ShouldFailValidation {
		return nil, apperror.New(apperror.ErrValidation, "search query is required")
	}
	return &m.MockResults, nil
}
