package model

import (
	"time"
)

// Subscription keeps its row after unsubscribe; IsSubscribed is a soft
// flag so a later resubscribe does not lose history.
type Subscription struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(50);not null" json:"lastName"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_sub_email" json:"email"`
	IsSubscribed bool      `gorm:"type:tinyint(1);not null;default:1" json:"isSubscribed"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
