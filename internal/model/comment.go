package model

import (
	"time"
)

// Comment is a node in a two-level tree rooted at a Post. ParentID nil
// means top-level; a non-nil ParentID references another comment of the
// same post. Replies never nest deeper than one level.
type Comment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	ParentID   *uint64   `gorm:"index:idx_parent_id" json:"parentId"`
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	Email      string    `gorm:"type:varchar(100);not null" json:"email"`
	Content    string    `gorm:"type:varchar(1000);not null" json:"content"`
	IsApproved bool      `gorm:"type:tinyint(1);not null;default:0" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`

	Replies []Comment `gorm:"-" json:"replies,omitempty"`
	Post    *Post     `gorm:"foreignKey:PostID;references:ID" json:"post,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
