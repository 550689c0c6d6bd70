package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	booking "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// writeBookingError maps the four scheduling outcomes to transport
// responses; anything else is an infrastructure failure.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidRange):
		httperr.Unprocessable(c, "invalid_range", "end_at must be after start_at.")
	case errors.Is(err, booking.ErrOutsideWorkingHours):
		httperr.Unprocessable(c, "outside_working_hours", "Range is outside the master's working hours.")
	case errors.Is(err, booking.ErrMasterBusy):
		httperr.Conflict(c, "master_busy", "Master is busy for this time range.")
	case errors.Is(err, booking.ErrAppointmentNotFound):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	default:
		httperr.Internal(c, "booking_failed", "Failed to process appointment.")
	}
}
