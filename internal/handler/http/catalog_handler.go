package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type CatalogHandler struct {
	catalogUsecase usecasecontract.ICatalogUseCase
}

func NewCatalogHandler(catalogUsecase usecasecontract.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// ListSongsHandler handles GET /songs
func (h *CatalogHandler) ListSongsHandler(c *gin.Context) {
	songs, err := h.catalogUsecase.ListSongs(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, songs)
}

// GetSongHandler handles GET /songs/:id
func (h *CatalogHandler) GetSongHandler(c *gin.Context) {
	song, err := h.catalogUsecase.GetSong(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, song)
}

// ListAlbumsHandler handles GET /albums
func (h *CatalogHandler) ListAlbumsHandler(c *gin.Context) {
	albums, err := h.catalogUsecase.ListAlbums(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, albums)
}

// GetAlbumHandler handles GET /albums/:id
func (h *CatalogHandler) GetAlbumHandler(c *gin.Context) {
	album, err := h.catalogUsecase.GetAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, album)
}

// GetPlaylistHandler handles GET /playlists/:id. Auth is optional: a private
// playlist resolves only for its owner and is a 404 for everyone else.
func (h *CatalogHandler) GetPlaylistHandler(c *gin.Context) {
	requesterID, _ := currentUserID(c)
	playlist, err := h.catalogUsecase.GetPlaylist(c.Request.Context(), c.Param("id"), requesterID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

// ListOwnPlaylistsHandler handles GET /me/playlists
func (h *CatalogHandler) ListOwnPlaylistsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	playlists, err := h.catalogUsecase.ListOwnPlaylists(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlists)
}
