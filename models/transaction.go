package models

import "time"

var TransactionTypes = []string{"income", "expense"}

// Transactions are append/delete only; revenue and expense aggregates are
// derived client-side over the full list.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobID *uint `gorm:"index" json:"jobId"`

	Description string    `gorm:"not null" json:"description"`
	Amount      Money     `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type        string    `gorm:"not null" json:"type"`
	Category    *string   `json:"category"`
	Date        time.Time `gorm:"not null;index" json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
