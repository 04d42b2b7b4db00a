package models

import "time"

type Blog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Image     string    `json:"image"` // media-root relative path, empty when none
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author User   `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Tags   []Tag  `json:"tags,omitempty" gorm:"many2many:blog_tags;"`
	Likes  []User `json:"-" gorm:"many2many:blog_likes;constraint:OnDelete:CASCADE;"`
}

func (Blog) TableName() string {
	return "blogs"
}
