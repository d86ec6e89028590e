// Package storage defines the persistence operations for every entity.
// Each operation is a single row-level read or write; nothing here spans
// multiple entities in one transaction, and concurrent updates to the same
// row are last-write-wins.
package storage

import (
	"time"

	"haulpro-backend/models"

	"github.com/google/uuid"
)

// Store is the full operation set. Not-found is reported as
// gorm.ErrRecordNotFound from getters and updates, and as a false boolean
// from deletes; neither is an internal error.
type Store interface {
	// Users
	UserByID(id uuid.UUID) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUserRole(id uuid.UUID, role string) (*models.User, error)
	CountUsers() (int64, error)

	// Customers
	Customers() ([]models.Customer, error)
	Customer(id uint) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	UpdateCustomer(id uint, fields map[string]interface{}) (*models.Customer, error)
	DeleteCustomer(id uint) (bool, error)

	// Jobs
	Jobs() ([]models.Job, error)
	Job(id uint) (*models.Job, error)
	JobsByCustomer(customerID uint) ([]models.Job, error)
	CreateJob(job *models.Job) error
	UpdateJob(id uint, fields map[string]interface{}) (*models.Job, error)
	DeleteJob(id uint) (bool, error)

	// Quotes
	Quotes() ([]models.Quote, error)
	Quote(id uint) (*models.Quote, error)
	CreateQuote(quote *models.Quote) error
	UpdateQuote(id uint, fields map[string]interface{}) (*models.Quote, error)
	DeleteQuote(id uint) (bool, error)

	// Leads
	Leads() ([]models.Lead, error)
	Lead(id uint) (*models.Lead, error)
	CreateLead(lead *models.Lead) error
	UpdateLead(id uint, fields map[string]interface{}) (*models.Lead, error)
	DeleteLead(id uint) (bool, error)

	// Invoices
	Invoices() ([]models.Invoice, error)
	Invoice(id uint) (*models.Invoice, error)
	CreateInvoice(invoice *models.Invoice) error
	UpdateInvoice(id uint, fields map[string]interface{}) (*models.Invoice, error)
	DeleteInvoice(id uint) (bool, error)

	// Transactions (append/delete only)
	Transactions() ([]models.Transaction, error)
	Transaction(id uint) (*models.Transaction, error)
	TransactionsByDateRange(start, end time.Time) ([]models.Transaction, error)
	CreateTransaction(transaction *models.Transaction) error
	DeleteTransaction(id uint) (bool, error)

	// Notifications
	Notifications() ([]models.Notification, error)
	CreateNotification(notification *models.Notification) error
	MarkNotificationRead(id uint) (*models.Notification, error)
	MarkAllNotificationsRead() (int64, error)
	ClearNotifications() (int64, error)
}
