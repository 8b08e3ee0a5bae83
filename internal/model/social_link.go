package model

import (
	"time"
)

const (
	SocialTypeInstagram = "instagram"
	SocialTypeFacebook  = "facebook"
	SocialTypeTwitter   = "twitter"
)

type SocialLink struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"type:varchar(20);not null;default:instagram" json:"type"`
	URL          string    `gorm:"type:varchar(512);not null" json:"url"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool      `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (SocialLink) TableName() string {
	return "social_links"
}
