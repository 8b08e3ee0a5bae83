package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_slug" json:"slug"`
	Excerpt     string    `gorm:"type:varchar(500);not null" json:"excerpt"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Image       string    `gorm:"type:varchar(512);not null" json:"image"`
	Date        string    `gorm:"type:varchar(50);not null" json:"date"` // display date, free-form
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
