package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxzok/hw05-final/internal/dto"
)

func (h *Handler) groupsGetAll(c *gin.Context) {
	groups, err := h.services.Group.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *Handler) groupsCreate(c *gin.Context) {
	var input dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdGroup, err := h.services.Group.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdGroup)
}

func (h *Handler) groupsGetPosts(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	page, err := pageQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	feedPage, err := h.services.Feed.Group(c.Request.Context(), slug, page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedPage)
}

func (h *Handler) groupsDelete(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	if err := h.services.Group.Delete(c.Request.Context(), slug); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
