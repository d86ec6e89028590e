package models

import "time"

var JobStatuses = []string{"Pending", "Scheduled", "In Progress", "Completed"}

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// CustomerID is a soft reference: deleting a customer leaves the job in
	// place and CustomerName stays authoritative for display.
	CustomerID   *uint  `gorm:"index" json:"customerId"`
	CustomerName string `gorm:"not null" json:"customerName"`

	Address string    `gorm:"not null" json:"address"`
	Date    time.Time `gorm:"not null;index" json:"date"`
	Status  string    `gorm:"not null;default:Pending" json:"status"`
	Type    string    `gorm:"not null" json:"type"`
	Price   *Money    `gorm:"type:decimal(10,2)" json:"price"`
	Notes   *string   `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
