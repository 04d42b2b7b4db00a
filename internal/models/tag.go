package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag names are stored lower-cased; tags are created lazily when a blog
// references them.
type Tag struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) (err error) {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return
}

func (Tag) TableName() string {
	return "tags"
}
