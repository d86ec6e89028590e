// controllers/lead.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LeadController struct {
	Store storage.Store
}

type CreateLeadInput struct {
	Name     string        `json:"name" binding:"required"`
	Stage    string        `json:"stage"`
	Value    *models.Money `json:"value"`
	NextStep *string       `json:"nextStep"`
	Source   *string       `json:"source"`
}

type UpdateLeadInput struct {
	Name     *string       `json:"name"`
	Stage    *string       `json:"stage"`
	Value    *models.Money `json:"value"`
	NextStep *string       `json:"nextStep"`
	Source   *string       `json:"source"`
}

func (ctl *LeadController) Create(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	v.OneOf("stage", input.Stage, models.LeadStages)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	lead := models.Lead{
		Name:     input.Name,
		Stage:    input.Stage,
		NextStep: input.NextStep,
		Source:   input.Source,
	}
	if lead.Stage == "" {
		lead.Stage = "New"
	}
	if input.Value != nil {
		lead.Value = *input.Value
	}

	if err := ctl.Store.CreateLead(&lead); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (ctl *LeadController) List(c *gin.Context) {
	leads, err := ctl.Store.Leads()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (ctl *LeadController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := ctl.Store.Lead(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Update accepts any stage directly; the one-step pipeline nudge is a
// client affordance, not a server rule.
func (ctl *LeadController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID")
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
	var input UpdateLeadInput
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
	if _, ok := present["stage"]; ok {
		if input.Stage == nil {
			v.Add("stage", "cannot be null")
		} else {
			v.OneOf("stage", *input.Stage, models.LeadStages)
			updates["stage"] = *input.Stage
		}
	}
	if _, ok := present["value"]; ok {
		if input.Value == nil {
			v.Add("value", "cannot be null")
		} else {
			updates["value"] = *input.Value
		}
	}
	if _, ok := present["nextStep"]; ok {
		updates["next_step"] = nullableString(input.NextStep)
	}
	if _, ok := present["source"]; ok {
		updates["source"] = nullableString(input.Source)
	}
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	lead, err := ctl.Store.UpdateLead(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (ctl *LeadController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	deleted, err := ctl.Store.DeleteLead(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete lead")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}
	c.Status(http.StatusNoContent)
}
