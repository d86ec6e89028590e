package models

import (
	"time"

	"github.com/lib/pq"
)

var CustomerTypes = []string{"Residential", "Commercial", "Realtor/Broker", "Contractor"}

type Customer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	ZipCode *string `json:"zipCode"`

	Type  string         `gorm:"not null;default:Residential" json:"type"`
	Tags  pq.StringArray `gorm:"type:text[]" json:"tags"`
	Notes *string        `json:"notes"`

	// TotalSpent is server-managed and never client-settable.
	TotalSpent  Money      `gorm:"type:decimal(10,2)" json:"totalSpent"`
	LastService *time.Time `json:"lastService"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
