package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"github.com/melodix-app/melodix-backend/internal/handler/http/dto"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// CreateCommentHandler handles POST /comments/:targetType/:targetId
func (h *CommentHandler) CreateCommentHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.commentUsecase.AddComment(c.Request.Context(), userID, uri.TargetID, entity.ContentType(uri.TargetType), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

// UpdateCommentHandler handles PUT /comments/:commentId
func (h *CommentHandler) UpdateCommentHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.CommentURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	var req dto.UpdateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	comment, err := h.commentUsecase.UpdateComment(c.Request.Context(), userID, uri.CommentID, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comment)
}

// DeleteCommentHandler handles DELETE /comments/:commentId
func (h *CommentHandler) DeleteCommentHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var uri dto.CommentURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	if err := h.commentUsecase.DeleteComment(c.Request.Context(), userID, uri.CommentID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "comment deleted")
}

// ListCommentsHandler handles GET /comments/:targetType/:targetId
func (h *CommentHandler) ListCommentsHandler(c *gin.Context) {
	var uri dto.TargetURI
	if err := BindURI(c, &uri); err != nil {
		return
	}
	comments, err := h.commentUsecase.ListComments(c.Request.Context(), uri.TargetID, entity.ContentType(uri.TargetType))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}
