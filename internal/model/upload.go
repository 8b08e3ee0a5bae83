package model

import (
	"time"
)

// Upload pairs a remote storage object with its local metadata record.
// Filename is the authoritative object key in the remote store; the
// record is only removed after the remote delete reports success.
type Upload struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"originalname"`
	MimeType     string    `gorm:"type:varchar(100);not null" json:"mimetype"`
	Size         int64     `gorm:"not null" json:"size"`
	URL          string    `gorm:"type:varchar(512);not null" json:"url"`
	Width        int       `gorm:"not null;default:0" json:"width,omitempty"`
	Height       int       `gorm:"not null;default:0" json:"height,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Upload) TableName() string {
	return "uploads"
}
