// controllers/invoice.go
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
	"gorm.io/gorm"
)

type InvoiceController struct {
	Store storage.Store
}

type CreateInvoiceInput struct {
	CustomerID   *uint         `json:"customerId"`
	JobID        *uint         `json:"jobId"`
	CustomerName string        `json:"customerName" binding:"required"`
	JobTitle     *string       `json:"jobTitle"`
	Amount       *models.Money `json:"amount"`
	Status       string        `json:"status"`
	DueDate      *time.Time    `json:"dueDate"`
}

type UpdateInvoiceInput struct {
	CustomerID   *uint         `json:"customerId"`
	JobID        *uint         `json:"jobId"`
	CustomerName *string       `json:"customerName"`
	JobTitle     *string       `json:"jobTitle"`
	Amount       *models.Money `json:"amount"`
	Status       *string       `json:"status"`
	DueDate      *time.Time    `json:"dueDate"`
}

func (ctl *InvoiceController) Create(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	if input.Amount == nil {
		v.Add("amount", "is required")
	}
	v.OneOf("status", input.Status, models.InvoiceStatuses)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	invoice := models.Invoice{
		CustomerID:   input.CustomerID,
		JobID:        input.JobID,
		CustomerName: input.CustomerName,
		JobTitle:     input.JobTitle,
		Amount:       *input.Amount,
		Status:       input.Status,
		DueDate:      input.DueDate,
	}
	if invoice.Status == "" {
		invoice.Status = "Draft"
	}

	if err := ctl.Store.CreateInvoice(&invoice); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (ctl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctl.Store.Invoices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (ctl *InvoiceController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	invoice, err := ctl.Store.Invoice(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Update merges the patch. Status moves are operator-driven; nothing here
// flips invoices to Overdue automatically.
func (ctl *InvoiceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
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
	var input UpdateInvoiceInput
	if err := json.Unmarshal(raw, &input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	var v utils.Validator
	if _, ok := present["customerId"]; ok {
		updates["customer_id"] = nullableUint(input.CustomerID)
	}
	if _, ok := present["jobId"]; ok {
		updates["job_id"] = nullableUint(input.JobID)
	}
	if _, ok := present["customerName"]; ok {
		if input.CustomerName == nil {
			v.Add("customerName", "cannot be null")
		} else {
			v.Require("customerName", *input.CustomerName)
			updates["customer_name"] = *input.CustomerName
		}
	}
	if _, ok := present["jobTitle"]; ok {
		updates["job_title"] = nullableString(input.JobTitle)
	}
	if _, ok := present["amount"]; ok {
		if input.Amount == nil {
			v.Add("amount", "cannot be null")
		} else {
			updates["amount"] = *input.Amount
		}
	}
	if _, ok := present["status"]; ok {
		if input.Status == nil {
			v.Add("status", "cannot be null")
		} else {
			v.OneOf("status", *input.Status, models.InvoiceStatuses)
			updates["status"] = *input.Status
		}
	}
	if _, ok := present["dueDate"]; ok {
		updates["due_date"] = nullableTime(input.DueDate)
	}
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	invoice, err := ctl.Store.UpdateInvoice(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		}
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (ctl *InvoiceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	deleted, err := ctl.Store.DeleteInvoice(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.Status(http.StatusNoContent)
}
