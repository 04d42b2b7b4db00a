package dto

import (
	"time"

	"codaverse/internal/models"
)

// Snippet sort orders accepted by the list endpoint
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortMostLiked = "most_liked"
)

// Reaction values as they appear on the wire; absence of a reaction is a
// JSON null.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// CodeEntryRequest: one nested code body in a snippet create payload
type CodeEntryRequest struct {
	LanguageID int64  `json:"language_id" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

// CreateSnippetRequest: write payload with nested code entries, persisted as
// child rows in one transaction.
type CreateSnippetRequest struct {
	Title       string             `json:"title" binding:"required,max=200"`
	Description string             `json:"description" binding:"required"`
	Codes       []CodeEntryRequest `json:"codes" binding:"required,min=1,dive"`
}

// UpdateSnippetRequest: partial update of the snippet's own fields
type UpdateSnippetRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// CodeResponse: read representation with the language expanded
type CodeResponse struct {
	ID       int64            `json:"id"`
	Language LanguageResponse `json:"language"`
	Code     string           `json:"code"`
}

// SnippetResponse: read representation with author, codes and reaction state
type SnippetResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Author        UserResponse   `json:"author"`
	Codes         []CodeResponse `json:"codes"`
	CreatedAt     time.Time      `json:"created_at"`
	LikesCount    int64          `json:"likes_count"`
	DislikesCount int64          `json:"dislikes_count"`
	UserReaction  *string        `json:"user_reaction"`
}

// ReactionResponse: result of a like/dislike toggle
type ReactionResponse struct {
	LikesCount    int64   `json:"likes_count"`
	DislikesCount int64   `json:"dislikes_count"`
	UserReaction  *string `json:"user_reaction"`
}

// FromModelToSnippetResponse converts a CodeSnippet model to SnippetResponse
// DTO. Counts and the viewer's reaction come from the service, which checks
// membership instead of materializing the like collections.
func FromModelToSnippetResponse(snippet *models.CodeSnippet, likes, dislikes int64, reaction *string) *SnippetResponse {
	codes := make([]CodeResponse, 0, len(snippet.Codes))
	for i := range snippet.Codes {
		code := &snippet.Codes[i]
		codes = append(codes, CodeResponse{
			ID:       code.ID,
			Language: *FromModelToLanguageResponse(&code.Language),
			Code:     code.Code,
		})
	}

	return &SnippetResponse{
		ID:            snippet.ID,
		Title:         snippet.Title,
		Description:   snippet.Description,
		Author:        *FromModelToUserResponse(&snippet.Author),
		Codes:         codes,
		CreatedAt:     snippet.CreatedAt,
		LikesCount:    likes,
		DislikesCount: dislikes,
		UserReaction:  reaction,
	}
}
