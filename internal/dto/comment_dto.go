package dto

import (
	"time"

	"codaverse/internal/models"
)

// CreateCommentRequest for creating a comment; the author always comes from
// the authenticated identity.
type CreateCommentRequest struct {
	DiscussionID int64  `json:"discussion" binding:"required"`
	Content      string `json:"content" binding:"required,min=1,max=5000"`
}

// UpdateCommentRequest for updating a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentResponse for returning comment information with the author expanded
type CommentResponse struct {
	ID           int64        `json:"id"`
	DiscussionID int64        `json:"discussion"`
	Author       UserResponse `json:"author"`
	Content      string       `json:"content"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:           comment.ID,
		DiscussionID: comment.DiscussionID,
		Author:       *FromModelToUserResponse(&comment.Author),
		Content:      comment.Content,
		CreatedAt:    comment.CreatedAt,
		UpdatedAt:    comment.UpdatedAt,
	}
}
