package booking

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// The four scheduling outcomes a caller can correct. Anything else coming
// out of this package is an infrastructure failure from the store.
var (
	ErrInvalidRange        = httperr.ErrBusiness("invalid_range")
	ErrOutsideWorkingHours = httperr.ErrBusiness("outside_working_hours")
	ErrMasterBusy          = httperr.ErrBusiness("master_busy")
	ErrAppointmentNotFound = httperr.ErrBusiness("appointment_not_found")
)
