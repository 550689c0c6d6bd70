package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// parseAppointmentFilter reads the shared listing query params. Writes
// the error response itself and returns ok=false on bad input.
func parseAppointmentFilter(c *gin.Context) (domain.AppointmentFilter, bool) {
	var filter domain.AppointmentFilter

	if v := c.Query("master_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_master_id", "Invalid master_id.")
			return filter, false
		}
		masterID := uint(id)
		filter.MasterID = &masterID
	}

	if v := c.Query("customer_telegram_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_customer_id", "Invalid customer_telegram_id.")
			return filter, false
		}
		filter.CustomerTelegramID = &id
	}

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Invalid from timestamp.")
			return filter, false
		}
		filter.From = &from
	}

	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Invalid to timestamp.")
			return filter, false
		}
		filter.To = &to
	}

	return filter, true
}
