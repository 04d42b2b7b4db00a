package dto

import (
	"time"

	"codaverse/internal/models"
)

// CreateDiscussionRequest: flat write payload referencing the category by id
type CreateDiscussionRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	CategoryID int64  `json:"category" binding:"required"`
}

// UpdateDiscussionRequest mirrors the create payload; partial updates keep
// nil fields untouched.
type UpdateDiscussionRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"category"`
	IsPinned   *bool   `json:"is_pinned"`
}

// DiscussionResponse: read representation with author, category and comments
// expanded as objects.
type DiscussionResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Category  CategoryResponse  `json:"category"`
	Author    UserResponse      `json:"author"`
	Comments  []CommentResponse `json:"comments"`
	Views     int               `json:"views"`
	IsPinned  bool              `json:"is_pinned"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// FromModelToDiscussionResponse converts a Discussion model to DiscussionResponse DTO
func FromModelToDiscussionResponse(discussion *models.Discussion) *DiscussionResponse {
	comments := make([]CommentResponse, 0, len(discussion.Comments))
	for i := range discussion.Comments {
		comments = append(comments, *FromModelToCommentResponse(&discussion.Comments[i]))
	}

	return &DiscussionResponse{
		ID:        discussion.ID,
		Title:     discussion.Title,
		Content:   discussion.Content,
		Category:  *FromModelToCategoryResponse(&discussion.Category),
		Author:    *FromModelToUserResponse(&discussion.Author),
		Comments:  comments,
		Views:     discussion.Views,
		IsPinned:  discussion.IsPinned,
		CreatedAt: discussion.CreatedAt,
		UpdatedAt: discussion.UpdatedAt,
	}
}

// PaginatedDiscussionResponse for returning paginated discussions
type PaginatedDiscussionResponse struct {
	Data       []DiscussionResponse `json:"data"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// NewPaginatedDiscussionResponse creates a paginated discussion response
func NewPaginatedDiscussionResponse(data []DiscussionResponse, total, page, pageSize int) *PaginatedDiscussionResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedDiscussionResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
