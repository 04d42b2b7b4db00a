package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/middleware"
	"codaverse/internal/service"
)

type SnippetHandler struct {
	snippetService service.SnippetService
}

func NewSnippetHandler(snippetService service.SnippetService) *SnippetHandler {
	return &SnippetHandler{snippetService: snippetService}
}

// List returns snippets sorted per the query parameter.
// GET /api/snippets?sort=newest|oldest|most_liked
func (h *SnippetHandler) List(c *gin.Context) {
	sort := c.DefaultQuery("sort", dto.SortNewest)

	snippets, err := h.snippetService.List(middleware.CurrentUser(c), sort)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snippets)
}

// GET /api/snippets/:id
func (h *SnippetHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	snippet, err := h.snippetService.Get(middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snippet)
}

// Create persists the snippet and its nested code entries in one operation.
// POST /api/snippets
func (h *SnippetHandler) Create(c *gin.Context) {
	var req dto.CreateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	snippet, err := h.snippetService.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snippet)
}

// PUT/PATCH /api/snippets/:id
func (h *SnippetHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	snippet, err := h.snippetService.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snippet)
}

// DELETE /api/snippets/:id
func (h *SnippetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.snippetService.Delete(middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Like toggles the requester's like; a standing dislike is cleared first.
// POST /api/snippets/:id/like
func (h *SnippetHandler) Like(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.snippetService.Like(middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Dislike is the mirror of Like.
// POST /api/snippets/:id/dislike
func (h *SnippetHandler) Dislike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.snippetService.Dislike(middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
