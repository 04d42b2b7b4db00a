package dto

import "codaverse/internal/models"

// LanguageRequest: write payload; slug derived from name when omitted
type LanguageRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"omitempty,max=50"`
	Code string `json:"code" binding:"omitempty,max=10"`
}

// LanguageResponse: read representation
type LanguageResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Code string `json:"code"`
}

// FromModelToLanguageResponse converts a ProgrammingLanguage model to LanguageResponse DTO
func FromModelToLanguageResponse(language *models.ProgrammingLanguage) *LanguageResponse {
	return &LanguageResponse{
		ID:   language.ID,
		Name: language.Name,
		Slug: language.Slug,
		Code: language.Code,
	}
}
