package dto

// TargetURI identifies an engagement target from the request path.
type TargetURI struct {
	TargetType string `uri:"targetType" binding:"required,targettype"`
	TargetID   string `uri:"targetId" binding:"required"`
}

// CommentURI identifies a comment from the request path.
type CommentURI struct {
	CommentID string `uri:"commentId" binding:"required"`
}

// SongURI identifies a song from the request path.
type SongURI struct {
	SongID string `uri:"songId" binding:"required"`
}

// CreateCommentRequest is the body for posting a comment.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest is the body for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
