package models

import "time"

type CodeSnippet struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	AuthorID    string    `json:"author_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Author   User   `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Codes    []Code `json:"codes,omitempty" gorm:"foreignKey:SnippetID;constraint:OnDelete:CASCADE;"`
	Likes    []User `json:"-" gorm:"many2many:snippet_likes;constraint:OnDelete:CASCADE;"`
	Dislikes []User `json:"-" gorm:"many2many:snippet_dislikes;constraint:OnDelete:CASCADE;"`
}

func (CodeSnippet) TableName() string {
	return "code_snippets"
}
