package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/service"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidPage   = errors.New("page must be int")
)

// respondError maps a service failure category to a user-facing outcome.
// PermissionDenied on post edits is handled separately: those become a
// redirect to the read-only detail page, not a hard error.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrInvalidOperation):
		c.JSON(http.StatusConflict, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
	}
}
