package models

import "time"

type Discussion struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	CategoryID int64     `json:"category_id" gorm:"not null;index"`
	AuthorID   string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Views      int       `json:"views" gorm:"default:0;not null"`
	IsPinned   bool      `json:"is_pinned" gorm:"default:false;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Category Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:DiscussionID;constraint:OnDelete:CASCADE;"`
}

func (Discussion) TableName() string {
	return "discussions"
}
