package models

import "time"

type Comment struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	DiscussionID int64     `json:"discussion_id" gorm:"not null;index"`
	AuthorID     string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Content      string    `json:"content" gorm:"not null;type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Discussion Discussion `json:"discussion,omitempty" gorm:"foreignKey:DiscussionID;constraint:OnDelete:CASCADE;"`
	Author     User       `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
