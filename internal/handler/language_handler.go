package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codaverse/internal/dto"
	"codaverse/internal/service"
)

// LanguageHandler serves the admin-managed programming language set.
type LanguageHandler struct {
	languageService service.LanguageService
}

func NewLanguageHandler(languageService service.LanguageService) *LanguageHandler {
	return &LanguageHandler{languageService: languageService}
}

// List returns all languages ordered by name.
// GET /api/languages
func (h *LanguageHandler) List(c *gin.Context) {
	languages, err := h.languageService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, languages)
}

// GET /api/languages/:id
func (h *LanguageHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	language, err := h.languageService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, language)
}

// POST /api/languages
func (h *LanguageHandler) Create(c *gin.Context) {
	var req dto.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	language, err := h.languageService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, language)
}

// PUT /api/languages/:id
func (h *LanguageHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	language, err := h.languageService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, language)
}

// DELETE /api/languages/:id
func (h *LanguageHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.languageService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
