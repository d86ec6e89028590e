// controllers/job.go
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

type JobController struct {
	Store storage.Store
}

type CreateJobInput struct {
	CustomerID   *uint         `json:"customerId"`
	CustomerName string        `json:"customerName" binding:"required"`
	Address      string        `json:"address" binding:"required"`
	Date         time.Time     `json:"date" binding:"required"`
	Status       string        `json:"status"`
	Type         string        `json:"type" binding:"required"`
	Price        *models.Money `json:"price"`
	Notes        *string       `json:"notes"`
}

type UpdateJobInput struct {
	CustomerID   *uint         `json:"customerId"`
	CustomerName *string       `json:"customerName"`
	Address      *string       `json:"address"`
	Date         *time.Time    `json:"date"`
	Status       *string       `json:"status"`
	Type         *string       `json:"type"`
	Price        *models.Money `json:"price"`
	Notes        *string       `json:"notes"`
}

func (ctl *JobController) Create(c *gin.Context) {
	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	v.OneOf("status", input.Status, models.JobStatuses)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	job := models.Job{
		CustomerID:   input.CustomerID,
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Date:         input.Date,
		Status:       input.Status,
		Type:         input.Type,
		Price:        input.Price,
		Notes:        input.Notes,
	}
	if job.Status == "" {
		job.Status = "Pending"
	}

	if err := ctl.Store.CreateJob(&job); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (ctl *JobController) List(c *gin.Context) {
	jobs, err := ctl.Store.Jobs()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (ctl *JobController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := ctl.Store.Job(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

func (ctl *JobController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID")
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
	var input UpdateJobInput
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
	if _, ok := present["address"]; ok {
		if input.Address == nil {
			v.Add("address", "cannot be null")
		} else {
			v.Require("address", *input.Address)
			updates["address"] = *input.Address
		}
	}
	if _, ok := present["date"]; ok {
		if input.Date == nil {
			v.Add("date", "cannot be null")
		} else {
			updates["date"] = *input.Date
		}
	}
	if _, ok := present["status"]; ok {
		if input.Status == nil {
			v.Add("status", "cannot be null")
		} else {
			v.OneOf("status", *input.Status, models.JobStatuses)
			updates["status"] = *input.Status
		}
	}
	if _, ok := present["type"]; ok {
		if input.Type == nil {
			v.Add("type", "cannot be null")
		} else {
			v.Require("type", *input.Type)
			updates["type"] = *input.Type
		}
	}
	if _, ok := present["price"]; ok {
		updates["price"] = nullableMoney(input.Price)
	}
	if _, ok := present["notes"]; ok {
		updates["notes"] = nullableString(input.Notes)
	}
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	job, err := ctl.Store.UpdateJob(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job")
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

func (ctl *JobController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	deleted, err := ctl.Store.DeleteJob(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Job not found")
		return
	}
	c.Status(http.StatusNoContent)
}
