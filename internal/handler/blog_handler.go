package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/middleware"
	"codaverse/internal/service"
	"codaverse/internal/storage"
)

type BlogHandler struct {
	blogService service.BlogService
	media       *storage.MediaStore
}

func NewBlogHandler(blogService service.BlogService, media *storage.MediaStore) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		media:       media,
	}
}

// List returns blogs newest first, optionally filtered by tag slug.
// GET /api/blogs?tag=<slug>
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogService.List(middleware.CurrentUser(c), c.Query("tag"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GET /api/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	blog, err := h.blogService.Get(middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Create accepts a multipart form: title, content, repeated tags fields and
// an optional image file.
// POST /api/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = h.media.SaveBlogImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
	}

	blog, err := h.blogService.Create(middleware.CurrentUser(c), &req, imagePath)
	if err != nil {
		// The row was not created, drop the stored file.
		if imagePath != "" {
			_ = h.media.Remove(imagePath)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// Update accepts JSON or, when a replacement image file is attached, a
// multipart form.
// PUT/PATCH /api/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateBlogRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = h.media.SaveBlogImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
	}

	blog, err := h.blogService.Update(middleware.CurrentUser(c), id, &req, imagePath)
	if err != nil {
		if imagePath != "" {
			_ = h.media.Remove(imagePath)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// DELETE /api/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Like toggles the requester's like on the blog.
// POST /api/blogs/:id/like
func (h *BlogHandler) Like(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.blogService.Like(middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Tags lists all tags ordered by name. Tags have no write endpoint; they
// come into existence through blog creation.
// GET /api/tags
func (h *BlogHandler) Tags(c *gin.Context) {
	tags, err := h.blogService.Tags()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
