package models

import (
	"time"

	"github.com/lib/pq"
)

var QuoteStatuses = []string{"Draft", "Sent", "Accepted", "Expired"}

type Quote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID    *uint   `gorm:"index" json:"customerId"`
	CustomerName  string  `gorm:"not null" json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone"`

	Items      pq.StringArray `gorm:"type:text[];not null" json:"items"`
	Total      Money          `gorm:"type:decimal(10,2);not null" json:"total"`
	Status     string         `gorm:"not null;default:Draft" json:"status"`
	ValidUntil *time.Time     `json:"validUntil"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
