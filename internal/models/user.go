package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"column:password_hash;not null" json:"-"` // bcrypt hash, never serialized
	IsActive    bool      `gorm:"default:true;not null" json:"is_active"`
	IsStaff     bool      `gorm:"default:false;not null" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false;not null" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

// IsAdmin reports whether the user may manage admin-only resources.
// Both staff and superusers pass the admin gate, matching the permission
// flags rather than the display role.
func (user *User) IsAdmin() bool {
	return user.IsStaff || user.IsSuperuser
}

func (User) TableName() string {
	return "users"
}
