package models

import (
	"time"

	"gorm.io/gorm"
)

type ProgrammingLanguage struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Code      string    `json:"code" gorm:"size:10;default:''"` // short display code, e.g. "rs"
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (l *ProgrammingLanguage) BeforeCreate(tx *gorm.DB) (err error) {
	if l.Slug == "" {
		l.Slug = Slugify(l.Name)
	}
	return
}

func (ProgrammingLanguage) TableName() string {
	return "programming_languages"
}
