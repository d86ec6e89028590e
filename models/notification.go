package models

import "time"

var NotificationTypes = []string{"info", "success", "warning", "error", "lead"}

// Notifications are append-only apart from the read flag and bulk clear.
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Type    string `gorm:"not null" json:"type"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
