// controllers/sms.go
package controllers

import (
	"log"
	"net/http"
	"os"

	"haulpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSController fronts the external messaging gateway. Without Twilio
// credentials it degrades to a logged no-op with the same response body, so
// local environments need no account.
type SMSController struct {
	client *twilio.RestClient
	from   string
}

func NewSMSController() *SMSController {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid == "" || authToken == "" {
		return &SMSController{}
	}
	return &SMSController{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

type SendSMSInput struct {
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (ctl *SMSController) Send(c *gin.Context) {
	var input SendSMSInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone and message are required")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if ctl.client == nil {
		log.Printf("SMS sent to %s: %s", input.Phone, input.Message)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "SMS sent successfully"})
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(input.Phone)
	params.SetFrom(ctl.from)
	params.SetBody(input.Message)

	if _, err := ctl.client.Api.CreateMessage(params); err != nil {
		log.Printf("Twilio send to %s failed: %v", input.Phone, err)
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to send SMS")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "SMS sent successfully"})
}
