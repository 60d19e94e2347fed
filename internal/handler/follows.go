package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxzok/hw05-final/internal/dto"
)

func (h *Handler) profilesGetPosts(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	feedPage, err := h.services.Feed.Profile(c.Request.Context(), username, page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedPage)
}

func (h *Handler) profilesFollow(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)
	username := strings.TrimSpace(c.Param("username"))

	if err := h.services.Follow.Follow(c.Request.Context(), user.ID, username); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) profilesUnfollow(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)
	username := strings.TrimSpace(c.Param("username"))

	if err := h.services.Follow.Unfollow(c.Request.Context(), user.ID, username); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) profilesIsFollowing(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)
	username := strings.TrimSpace(c.Param("username"))

	isFollowing, err := h.services.Follow.IsFollowing(c.Request.Context(), user.ID, username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFollowing": isFollowing})
}
