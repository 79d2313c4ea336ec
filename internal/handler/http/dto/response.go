package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LikedResponse answers the "has this user liked this target" check.
type LikedResponse struct {
	Liked bool `json:"liked"`
}

// DownloadResponse carries the file URL handed out for a recorded download.
type DownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}
