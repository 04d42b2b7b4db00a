package dto

import (
	"time"

	"codaverse/internal/models"
)

// CreateBlogRequest: multipart form payload. Tags arrive as repeated form
// fields; the image file is handled separately by the handler.
type CreateBlogRequest struct {
	Title   string   `form:"title" binding:"required,max=200"`
	Content string   `form:"content" binding:"required"`
	Tags    []string `form:"tags" binding:"omitempty,dive,max=50"`
}

// UpdateBlogRequest: partial update, accepted as JSON or as a multipart form
// when the update carries a replacement image file.
type UpdateBlogRequest struct {
	Title   *string `json:"title" form:"title" binding:"omitempty,max=200"`
	Content *string `json:"content" form:"content"`
}

// BlogResponse: read representation with author and tags expanded. image is
// the stored relative path, image_url the absolute form; both are null when
// the blog has no image.
type BlogResponse struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Author       UserResponse  `json:"author"`
	Tags         []TagResponse `json:"tags"`
	Image        *string       `json:"image"`
	ImageURL     *string       `json:"image_url"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	LikesCount   int64         `json:"likes_count"`
	UserHasLiked bool          `json:"user_has_liked"`
}

// BlogLikeResponse: result of a like toggle
type BlogLikeResponse struct {
	LikesCount   int64 `json:"likes_count"`
	UserHasLiked bool  `json:"user_has_liked"`
}

// FromModelToBlogResponse converts a Blog model to BlogResponse DTO. The
// imageURL is pre-built by the caller from the stored relative path.
func FromModelToBlogResponse(blog *models.Blog, likes int64, liked bool, imageURL string) *BlogResponse {
	tags := make([]TagResponse, 0, len(blog.Tags))
	for i := range blog.Tags {
		tags = append(tags, *FromModelToTagResponse(&blog.Tags[i]))
	}

	resp := &BlogResponse{
		ID:           blog.ID,
		Title:        blog.Title,
		Content:      blog.Content,
		Author:       *FromModelToUserResponse(&blog.Author),
		Tags:         tags,
		CreatedAt:    blog.CreatedAt,
		UpdatedAt:    blog.UpdatedAt,
		LikesCount:   likes,
		UserHasLiked: liked,
	}
	if blog.Image != "" {
		resp.Image = &blog.Image
		resp.ImageURL = &imageURL
	}
	return resp
}
