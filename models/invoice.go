package models

import "time"

// Invoice statuses are operator-driven; there is no automatic overdue
// detection.
var InvoiceStatuses = []string{"Draft", "Sent", "Paid", "Overdue"}

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID *uint `gorm:"index" json:"customerId"`
	JobID      *uint `gorm:"index" json:"jobId"`

	CustomerName string  `gorm:"not null" json:"customerName"`
	JobTitle     *string `json:"jobTitle"`

	Amount  Money      `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status  string     `gorm:"not null;default:Draft" json:"status"`
	DueDate *time.Time `json:"dueDate"`

	IssuedAt  time.Time `gorm:"autoCreateTime" json:"issuedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
