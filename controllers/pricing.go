package controllers

import (
	"net/http"

	"haulpro-backend/pricing"

	"github.com/gin-gonic/gin"
)

type PricingController struct{}

// Rates serves the tier and surcharge tables so every calculator in the
// client renders from the same source the server verifies against.
func (ctl *PricingController) Rates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tiers":      pricing.TierRates(),
		"surcharges": pricing.SurchargeRates(),
	})
}
