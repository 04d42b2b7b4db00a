package dto

import "codaverse/internal/models"

// Role labels derived from the permission flags. The label is never stored;
// it is computed here at the read boundary.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// UserResponse is the wire representation of a user, shared by login and the
// admin endpoints. is_active is exposed as isActive.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// RoleName derives the display role from the stored permission flags:
// superuser wins over staff.
func RoleName(user *models.User) string {
	if user.IsSuperuser {
		return RoleAdmin
	}
	if user.IsStaff {
		return RoleModerator
	}
	return RoleUser
}

// RoleFlags translates a role label into the stored permission flags.
func RoleFlags(role string) (isStaff, isSuperuser bool) {
	switch role {
	case RoleAdmin:
		return true, true
	case RoleModerator:
		return true, false
	default:
		return false, false
	}
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     RoleName(user),
		IsActive: user.IsActive,
	}
}

// CreateUserRequest: admin payload for creating a user with a chosen role
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=user moderator admin"`
}

// UpdateUserRequest: admin payload for partial user updates. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=user moderator admin"`
	IsActive *bool   `json:"isActive"`
}
