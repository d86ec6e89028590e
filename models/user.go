package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles form a flat set; admin is allow-listed wherever dispatcher or
// field is.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleField      = "field"
)

var UserRoles = []string{RoleAdmin, RoleDispatcher, RoleField}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
