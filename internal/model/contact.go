package model

import (
	"time"
)

type Contact struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(50);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"type:tinyint(1);not null;default:0" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}
