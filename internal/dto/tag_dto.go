package dto

import "codaverse/internal/models"

// TagResponse: read representation; tags have no direct write endpoint, they
// are created lazily from blog payloads.
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FromModelToTagResponse converts a Tag model to TagResponse DTO
func FromModelToTagResponse(tag *models.Tag) *TagResponse {
	return &TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}
