package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/service"
)

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsUploadImage(c *gin.Context) {
	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	url, err := h.services.Post.UploadTempPostImage(c.Request.Context(), file, fileHeader)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), int64(postID))
	if err != nil {
		h.respondError(c, err)
		return
	}

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), post.Post.ID, 0, 0)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PostDetail{
		Post:     *post,
		Comments: comments,
	})
}

func (h *Handler) postsEdit(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.Atoi(postIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.Update(c.Request.Context(), int64(postID), user.ID, input)
	if err != nil {
		// non-owners silently cannot edit: bounce them to the read-only detail page
		if errors.Is(err, service.ErrPermissionDenied) {
			c.Redirect(http.StatusSeeOther, "/api/v1/posts/"+postIDString)
			return
		}

		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *updatedPost)
}
