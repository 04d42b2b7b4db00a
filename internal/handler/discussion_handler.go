package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/middleware"
	"codaverse/internal/service"
)

type DiscussionHandler struct {
	discussionService service.DiscussionService
}

func NewDiscussionHandler(discussionService service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

// List returns a page of discussions, newest first, optionally filtered by
// category slug.
// GET /api/discussions?category=<slug>&page=&page_size=
func (h *DiscussionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	result, err := h.discussionService.List(c.Query("category"), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get returns one discussion with its comments and counts the view.
// GET /api/discussions/:id
func (h *DiscussionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	discussion, err := h.discussionService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, discussion)
}

// Create starts a discussion authored by the requester.
// POST /api/discussions
func (h *DiscussionHandler) Create(c *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	discussion, err := h.discussionService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, discussion)
}

// Update edits a discussion; only the author or an admin may do so.
// PUT/PATCH /api/discussions/:id
func (h *DiscussionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	discussion, err := h.discussionService.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, discussion)
}

// DELETE /api/discussions/:id
func (h *DiscussionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.discussionService.Delete(middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
