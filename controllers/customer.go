package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CustomerController struct {
	Store storage.Store
}

// CreateCustomerInput defines the expected JSON structure for creating a
// customer. TotalSpent is server-managed and deliberately absent.
type CreateCustomerInput struct {
	Name        string     `json:"name" binding:"required"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	ZipCode     *string    `json:"zipCode"`
	Type        string     `json:"type"`
	Tags        []string   `json:"tags"`
	Notes       *string    `json:"notes"`
	LastService *time.Time `json:"lastService"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a
// customer; every field is optional and merged into the stored row.
type UpdateCustomerInput struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Address     *string    `json:"address"`
	City        *string    `json:"city"`
	ZipCode     *string    `json:"zipCode"`
	Type        *string    `json:"type"`
	Tags        *[]string  `json:"tags"`
	Notes       *string    `json:"notes"`
	LastService *time.Time `json:"lastService"`
}

func (ctl *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	v.OneOf("type", input.Type, models.CustomerTypes)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	customer := models.Customer{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		ZipCode:     input.ZipCode,
		Type:        input.Type,
		Tags:        pq.StringArray(input.Tags),
		Notes:       input.Notes,
		LastService: input.LastService,
	}
	if customer.Type == "" {
		customer.Type = "Residential"
	}
	if customer.Tags == nil {
		customer.Tags = pq.StringArray{}
	}

	if err := ctl.Store.CreateCustomer(&customer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.Store.Customers()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := ctl.Store.Customer(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Jobs lists all jobs referencing a customer.
func (ctl *CustomerController) Jobs(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	jobs, err := ctl.Store.JobsByCustomer(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}
	present, err := utils.PatchFields(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	var input UpdateCustomerInput
	if err := json.Unmarshal(raw, &input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	var v utils.Validator
	if _, ok := present["name"]; ok {
		if input.Name == nil {
			v.Add("name", "cannot be null")
		} else {
			v.Require("name", *input.Name)
			updates["name"] = *input.Name
		}
	}
	if _, ok := present["email"]; ok {
		updates["email"] = nullableString(input.Email)
	}
	if _, ok := present["phone"]; ok {
		updates["phone"] = nullableString(input.Phone)
	}
	if _, ok := present["address"]; ok {
		updates["address"] = nullableString(input.Address)
	}
	if _, ok := present["city"]; ok {
		updates["city"] = nullableString(input.City)
	}
	if _, ok := present["zipCode"]; ok {
		updates["zip_code"] = nullableString(input.ZipCode)
	}
	if _, ok := present["type"]; ok {
		if input.Type == nil {
			v.Add("type", "cannot be null")
		} else {
			v.OneOf("type", *input.Type, models.CustomerTypes)
			updates["type"] = *input.Type
		}
	}
	if _, ok := present["tags"]; ok {
		if input.Tags == nil {
			updates["tags"] = pq.StringArray{}
		} else {
			updates["tags"] = pq.StringArray(*input.Tags)
		}
	}
	if _, ok := present["notes"]; ok {
		updates["notes"] = nullableString(input.Notes)
	}
	if _, ok := present["lastService"]; ok {
		updates["last_service"] = nullableTime(input.LastService)
	}
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	customer, err := ctl.Store.UpdateCustomer(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer. Jobs keep their customerName snapshot; the
// soft customerId reference is left dangling on purpose.
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	deleted, err := ctl.Store.DeleteCustomer(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
