package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxzok/hw05-final/internal/dto"
)

func pageQuery(c *gin.Context) (int, error) {
	pageString := strings.TrimSpace(c.Query("page"))
	if pageString == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(pageString)
	if err != nil {
		return 0, errInvalidPage
	}

	return page, nil
}

func (h *Handler) feedGlobal(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	feedPage, err := h.services.Feed.Global(c.Request.Context(), page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedPage)
}

func (h *Handler) feedFollowing(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	userID := uuid.Nil
	if user := h.getCachedUserFromRequest(c); user != nil {
		userID = user.ID
	}

	feedPage, err := h.services.Feed.Following(c.Request.Context(), userID, page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedPage)
}

func (h *Handler) feedCacheClear(c *gin.Context) {
	if err := h.services.FeedCache.Clear(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
