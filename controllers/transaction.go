// controllers/transaction.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransactionController struct {
	Store storage.Store
}

// Transactions are append/delete only; there is no update input.
type CreateTransactionInput struct {
	JobID       *uint         `json:"jobId"`
	Description string        `json:"description" binding:"required"`
	Amount      *models.Money `json:"amount"`
	Type        string        `json:"type" binding:"required"`
	Category    *string       `json:"category"`
	Date        *time.Time    `json:"date"`
}

func (ctl *TransactionController) Create(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	if input.Amount == nil {
		v.Add("amount", "is required")
	}
	v.OneOf("type", input.Type, models.TransactionTypes)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	transaction := models.Transaction{
		JobID:       input.JobID,
		Description: input.Description,
		Amount:      *input.Amount,
		Type:        input.Type,
		Category:    input.Category,
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	} else {
		transaction.Date = time.Now()
	}

	if err := ctl.Store.CreateTransaction(&transaction); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// List returns every transaction, or the slice inside an optional
// ?start=&end= window (RFC 3339). Revenue/expense/profit aggregation
// happens client-side over the returned set.
func (ctl *TransactionController) List(c *gin.Context) {
	startParam := c.Query("start")
	endParam := c.Query("end")

	if startParam != "" || endParam != "" {
		start, err := time.Parse(time.RFC3339, startParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date: expected RFC 3339")
			return
		}
		end, err := time.Parse(time.RFC3339, endParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date: expected RFC 3339")
			return
		}
		transactions, err := ctl.Store.TransactionsByDateRange(start, end)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
			return
		}
		c.JSON(http.StatusOK, transactions)
		return
	}

	transactions, err := ctl.Store.Transactions()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (ctl *TransactionController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := ctl.Store.Transaction(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func (ctl *TransactionController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	deleted, err := ctl.Store.DeleteTransaction(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		return
	}
	c.Status(http.StatusNoContent)
}
