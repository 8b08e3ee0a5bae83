package model

import (
	"time"
)

type GalleryItem struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	ImageURL     string    `gorm:"type:varchar(512);not null" json:"imageUrl"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool      `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
