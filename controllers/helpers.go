package controllers

import (
	"strconv"
	"time"

	"haulpro-backend/models"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// The nullable helpers turn typed nil pointers into untyped nils so a
// patch map entry cleanly NULLs the column.

func nullableString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableUint(v *uint) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableTime(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableMoney(v *models.Money) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
