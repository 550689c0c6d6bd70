package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel: only a booked appointment can be cancelled. A cancelled
// appointment is terminal and reported as not found, never re-cancelled.
func CanCancel(current Status) error {
	if current != StatusBooked {
		return ErrAppointmentNotFound
	}
	return nil
}

// CanReschedule: the time range may only move while booked.
func CanReschedule(current Status) error {
	if current != StatusBooked {
		return ErrAppointmentNotFound
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
