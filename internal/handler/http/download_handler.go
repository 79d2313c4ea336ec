package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/handler/http/dto"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type DownloadHandler struct {
	downloadUsecase usecasecontract.IDownloadUseCase
}

func NewDownloadHandler(downloadUsecase usecasecontract.IDownloadUseCase) *DownloadHandler {
	return &DownloadHandler{
		downloadUsecase: downloadUsecase,
	}
}

// RecordDownloadHandler handles POST /downloads/:songId
func (h *DownloadHandler) RecordDownloadHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.SongURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	downloadURL, err := h.downloadUsecase.RecordDownload(c.Request.Context(), userID, uri.SongID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.DownloadResponse{DownloadURL: downloadURL})
}

// ListDownloadsHandler handles GET /me/downloads
func (h *DownloadHandler) ListDownloadsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	downloads, err := h.downloadUsecase.ListUserDownloads(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, downloads)
}
