package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Discussions []Discussion `json:"discussions,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate derives the slug from the name once; an explicitly supplied
// slug is kept verbatim and never recomputed on later saves.
func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return
}

func (Category) TableName() string {
	return "categories"
}
