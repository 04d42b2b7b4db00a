package dto

import "codaverse/internal/models"

// GroupRequest: write payload for the admin-managed role list
type GroupRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// GroupResponse: read representation
type GroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FromModelToGroupResponse converts a Group model to GroupResponse DTO
func FromModelToGroupResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:   group.ID,
		Name: group.Name,
	}
}
