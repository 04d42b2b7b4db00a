package models

import "time"

// Code is one language-specific body inside a snippet, ordered by creation
// time ascending.
type Code struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SnippetID  int64     `json:"snippet_id" gorm:"not null;index"`
	LanguageID int64     `json:"language_id" gorm:"not null;index"`
	Code       string    `json:"code" gorm:"not null;type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Snippet  CodeSnippet         `json:"-" gorm:"foreignKey:SnippetID;constraint:OnDelete:CASCADE;"`
	Language ProgrammingLanguage `json:"language,omitempty" gorm:"foreignKey:LanguageID;constraint:OnDelete:CASCADE;"`
}

func (Code) TableName() string {
	return "codes"
}
