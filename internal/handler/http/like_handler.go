package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/handler/http/dto"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type LikeHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewLikeHandler(likeUsecase usecasecontract.ILikeUseCase) *LikeHandler {
	return &LikeHandler{
		likeUsecase: likeUsecase,
	}
}

// LikeTargetHandler handles POST /likes/:targetType/:targetId
func (h *LikeHandler) LikeTargetHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	like, err := h.likeUsecase.Like(c.Request.Context(), userID, uri.TargetID, entity.ContentType(uri.TargetType))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, like)
}

// UnlikeTargetHandler handles DELETE /likes/:targetType/:targetId
func (h *LikeHandler) UnlikeTargetHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	if err := h.likeUsecase.Unlike(c.Request.Context(), userID, uri.TargetID, entity.ContentType(uri.TargetType)); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "like removed")
}

// CheckLikedHandler handles GET /likes/:targetType/:targetId/check
func (h *LikeHandler) CheckLikedHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	liked, err := h.likeUsecase.IsLiked(c.Request.Context(), userID, uri.TargetID, entity.ContentType(uri.TargetType))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LikedResponse{Liked: liked})
}

// ListLikesHandler handles GET /likes/:targetType/:targetId
func (h *LikeHandler) ListLikesHandler(c *gin.Context) {
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	likes, err := h.likeUsecase.ListLikes(c.Request.Context(), uri.TargetID, entity.ContentType(uri.TargetType))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, likes)
}

// GetLikedSongsHandler handles GET /me/likes/songs
func (h *LikeHandler) GetLikedSongsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	songs, err := h.likeUsecase.ListLikedSongs(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, songs)
}

// GetLikedPlaylistsHandler handles GET /me/likes/playlists
func (h *LikeHandler) GetLikedPlaylistsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	playlists, err := h.likeUsecase.ListLikedPlaylists(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlists)
}
