package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// BindURI binds path parameters and validates them
func BindURI(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps a usecase error to an HTTP response. Internal errors get
// a generic message; everything else surfaces its own text.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		ErrorHandler(c, http.StatusConflict, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// currentUserID returns the actor set by the auth middleware. The second
// return is false for anonymous requests.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// requireUserID is currentUserID for routes behind the auth middleware; it
// writes the 401 itself when the actor is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return "", false
	}
	return userID, true
}
