package dto

import (
	"time"

	"codaverse/internal/models"
)

// NewsRequest: write payload. created_at may be supplied to backdate an
// item; when omitted it defaults to the current time.
type NewsRequest struct {
	Title     string     `json:"title" binding:"required,max=200"`
	Body      string     `json:"body" binding:"required"`
	CreatedAt *time.Time `json:"created_at"`
}

// NewsResponse: read representation
type NewsResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToNewsResponse converts a News model to NewsResponse DTO
func FromModelToNewsResponse(news *models.News) *NewsResponse {
	return &NewsResponse{
		ID:        news.ID,
		Title:     news.Title,
		Body:      news.Body,
		CreatedAt: news.CreatedAt,
		UpdatedAt: news.UpdatedAt,
	}
}
