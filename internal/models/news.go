package models

import "time"

// News items are ordered newest-first. CreatedAt deliberately has no
// autoCreateTime tag: a client-supplied publication time is kept, and the
// service fills in now() when the field is zero.
type News struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (News) TableName() string {
	return "news"
}
