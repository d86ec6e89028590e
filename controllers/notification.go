// controllers/notification.go
package controllers

import (
	"errors"
	"net/http"

	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	Store storage.Store
}

// CreateNotificationInput omits the read flag; notifications are born
// unread.
type CreateNotificationInput struct {
	Type    string `json:"type" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (ctl *NotificationController) Create(c *gin.Context) {
	var input CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var v utils.Validator
	v.OneOf("type", input.Type, models.NotificationTypes)
	if !v.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, v.Message())
		return
	}

	notification := models.Notification{
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
	}
	if err := ctl.Store.CreateNotification(&notification); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func (ctl *NotificationController) List(c *gin.Context) {
	notifications, err := ctl.Store.Notifications()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	notification, err := ctl.Store.MarkNotificationRead(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Notification not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification")
		}
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (ctl *NotificationController) MarkAllRead(c *gin.Context) {
	updated, err := ctl.Store.MarkAllNotificationsRead()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (ctl *NotificationController) Clear(c *gin.Context) {
	deleted, err := ctl.Store.ClearNotifications()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
