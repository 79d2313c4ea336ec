package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/melodix-app/melodix-backend/internal/handler/http"
	"github.com/melodix-app/melodix-backend/internal/handler/http/mocks"
)

func setupDownloadRouter(h *handler.DownloadHandler, userID string) *gin.Engine {
	r := gin.New()
	r.Use(fakeAuth(userID))
	r.POST("/downloads/:songId", h.RecordDownloadHandler)
	r.GET("/me/downloads", h.ListDownloadsHandler)
	return r
}

func TestRecordDownload(t *testing.T) {
	mockUsecase := mocks.NewMockDownloadUsecase()
	h := handler.NewDownloadHandler(mockUsecase)
	r := setupDownloadRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/downloads/song-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"downloadUrl":"https://cdn.example.com/mock-song.mp3"`)
}

func TestRecordDownload_NotDownloadable(t *testing.T) {
	mockUsecase := mocks.NewMockDownloadUsecase()
	mockUsecase.ShouldForbidDownload = true
	h := handler.NewDownloadHandler(mockUsecase)
	r := setupDownloadRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/downloads/song-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not available for download")
}

func TestRecordDownload_SongNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockDownloadUsecase()
	mockUsecase.ShouldNotFindSong = true
	h := handler.NewDownloadHandler(mockUsecase)
	r := setupDownloadRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/downloads/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordDownload_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockDownloadUsecase()
	h := handler.NewDownloadHandler(mockUsecase)
	r := setupDownloadRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/downloads/song-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListDownloads(t *testing.T) {
	mockUsecase := mocks.NewMockDownloadUsecase()
	h := handler.NewDownloadHandler(mockUsecase)
	r := setupDownloadRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me/downloads", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
