// controllers/quote.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"haulpro-backend/models"
	"haulpro-backend/pricing"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuoteController struct {
	Store storage.Store
}

type CreateQuoteInput struct {
	CustomerID    *uint         `json:"customerId"`
	CustomerName  string        `json:"customerName" binding:"required"`
	CustomerEmail *string       `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone"`
	Items         []string      `json:"items"`
	Total         *models.Money `json:"total"`
	Status        string        `json:"status"`
	ValidUntil    *time.Time    `json:"validUntil"`
}

type UpdateQuoteInput struct {
	CustomerID    *uint         `json:"customerId"`
	CustomerName  *string       `json:"customerName"`
	CustomerEmail *string       `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone"`
	Items         *[]string     `json:"items"`
	Total         *models.Money `json:"total"`
	Status        *string       `json:"status"`
	ValidUntil    *time.Time    `json:"validUntil"`
}

// Create stores a quote. When every line item matches the rate tables the
// submitted total is re-derived server-side and a mismatch is rejected;
// quotes carrying custom line items cannot be priced and are stored as
// submitted.
func (ctl *QuoteController) Create(c *gin.Context) {
	var input CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	if input.Items == nil {
		v.Add("items", "is required")
	}
	if input.Total == nil {
		v.Add("total", "is required")
	}
	v.OneOf("status", input.Status, models.QuoteStatuses)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	if len(input.Items) > 0 {
		if computed, ok := pricing.TotalFromItems(input.Items); ok && !computed.Equal(*input.Total) {
			utils.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("Quote total %s does not match calculated total %s", input.Total, computed))
			return
		}
	}

	quote := models.Quote{
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Items:         pq.StringArray(input.Items),
		Total:         *input.Total,
		Status:        input.Status,
		ValidUntil:    input.ValidUntil,
	}
	if quote.Status == "" {
		quote.Status = "Draft"
	}

	if err := ctl.Store.CreateQuote(&quote); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create quote")
		return
	}
	c.JSON(http.StatusCreated, quote)
}

func (ctl *QuoteController) List(c *gin.Context) {
	quotes, err := ctl.Store.Quotes()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve quotes")
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (ctl *QuoteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	quote, err := ctl.Store.Quote(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (ctl *QuoteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID")
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
	var input UpdateQuoteInput
	if err := json.Unmarshal(raw, &input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	var v utils.Validator
	if _, ok := present["customerId"]; ok {
		updates["customer_id"] = nullableUint(input.CustomerID)
	}
	if _, ok := present["customerName"]; ok {
		if input.CustomerName == nil {
			v.Add("customerName", "cannot be null")
		} else {
			v.Require("customerName", *input.CustomerName)
			updates["customer_name"] = *input.CustomerName
		}
	}
	if _, ok := present["customerEmail"]; ok {
		updates["customer_email"] = nullableString(input.CustomerEmail)
	}
	if _, ok := present["customerPhone"]; ok {
		updates["customer_phone"] = nullableString(input.CustomerPhone)
	}
	if _, ok := present["items"]; ok {
		if input.Items == nil {
			v.Add("items", "cannot be null")
		} else {
			updates["items"] = pq.StringArray(*input.Items)
		}
	}
	if _, ok := present["total"]; ok {
		if input.Total == nil {
			v.Add("total", "cannot be null")
		} else {
			updates["total"] = *input.Total
		}
	}
	if _, ok := present["status"]; ok {
		if input.Status == nil {
			v.Add("status", "cannot be null")
		} else {
			v.OneOf("status", *input.Status, models.QuoteStatuses)
			updates["status"] = *input.Status
		}
	}
	if _, ok := present["validUntil"]; ok {
		updates["valid_until"] = nullableTime(input.ValidUntil)
	}
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	quote, err := ctl.Store.UpdateQuote(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quote")
		}
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (ctl *QuoteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	deleted, err := ctl.Store.DeleteQuote(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete quote")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		return
	}
	c.Status(http.StatusNoContent)
}
