package storage

import (
	"time"

	"haulpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore implements Store against a relational database through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// withTimestamp copies the patch map and pins updated_at so even an empty
// patch refreshes it.
func withTimestamp(fields map[string]interface{}) map[string]interface{} {
	patched := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		patched[k] = v
	}
	patched["updated_at"] = time.Now()
	return patched
}

// ---------- Users ----------

func (s *GormStore) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStore) UpdateUserRole(id uuid.UUID, role string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ---------- Customers ----------

func (s *GormStore) Customers() ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (s *GormStore) Customer(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(customer *models.Customer) error {
	return s.db.Create(customer).Error
}

func (s *GormStore) UpdateCustomer(id uint, fields map[string]interface{}) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&customer).Updates(withTimestamp(fields)).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) DeleteCustomer(id uint) (bool, error) {
	result := s.db.Delete(&models.Customer{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Jobs ----------

func (s *GormStore) Jobs() ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.db.Order("date DESC").Find(&jobs).Error
	return jobs, err
}

func (s *GormStore) Job(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormStore) JobsByCustomer(customerID uint) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.db.Where("customer_id = ?", customerID).Order("date DESC").Find(&jobs).Error
	return jobs, err
}

func (s *GormStore) CreateJob(job *models.Job) error {
	return s.db.Create(job).Error
}

func (s *GormStore) UpdateJob(id uint, fields map[string]interface{}) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&job).Updates(withTimestamp(fields)).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormStore) DeleteJob(id uint) (bool, error) {
	result := s.db.Delete(&models.Job{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Quotes ----------

func (s *GormStore) Quotes() ([]models.Quote, error) {
	quotes := []models.Quote{}
	err := s.db.Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (s *GormStore) Quote(id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.First(&quote, id).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *GormStore) CreateQuote(quote *models.Quote) error {
	return s.db.Create(quote).Error
}

func (s *GormStore) UpdateQuote(id uint, fields map[string]interface{}) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.First(&quote, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&quote).Updates(withTimestamp(fields)).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&quote, id).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *GormStore) DeleteQuote(id uint) (bool, error) {
	result := s.db.Delete(&models.Quote{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Leads ----------

func (s *GormStore) Leads() ([]models.Lead, error) {
	leads := []models.Lead{}
	err := s.db.Order("updated_at DESC").Find(&leads).Error
	return leads, err
}

func (s *GormStore) Lead(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *GormStore) CreateLead(lead *models.Lead) error {
	return s.db.Create(lead).Error
}

func (s *GormStore) UpdateLead(id uint, fields map[string]interface{}) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&lead).Updates(withTimestamp(fields)).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *GormStore) DeleteLead(id uint) (bool, error) {
	result := s.db.Delete(&models.Lead{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Invoices ----------

func (s *GormStore) Invoices() ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := s.db.Order("issued_at DESC").Find(&invoices).Error
	return invoices, err
}

func (s *GormStore) Invoice(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *GormStore) CreateInvoice(invoice *models.Invoice) error {
	return s.db.Create(invoice).Error
}

func (s *GormStore) UpdateInvoice(id uint, fields map[string]interface{}) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&invoice).Updates(withTimestamp(fields)).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *GormStore) DeleteInvoice(id uint) (bool, error) {
	result := s.db.Delete(&models.Invoice{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Transactions ----------

func (s *GormStore) Transactions() ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := s.db.Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (s *GormStore) Transaction(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *GormStore) TransactionsByDateRange(start, end time.Time) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := s.db.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").Find(&transactions).Error
	return transactions, err
}

func (s *GormStore) CreateTransaction(transaction *models.Transaction) error {
	return s.db.Create(transaction).Error
}

func (s *GormStore) DeleteTransaction(id uint) (bool, error) {
	result := s.db.Delete(&models.Transaction{}, id)
	return result.RowsAffected > 0, result.Error
}

// ---------- Notifications ----------

func (s *GormStore) Notifications() ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := s.db.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (s *GormStore) CreateNotification(notification *models.Notification) error {
	return s.db.Create(notification).Error
}

func (s *GormStore) MarkNotificationRead(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&notification).Update("read", true).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *GormStore) MarkAllNotificationsRead() (int64, error) {
	result := s.db.Model(&models.Notification{}).Where("read = ?", false).Update("read", true)
	return result.RowsAffected, result.Error
}

func (s *GormStore) ClearNotifications() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
