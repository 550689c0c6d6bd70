package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentFilter struct {
	MasterID           *uint
	CustomerTelegramID *int64
	From               *time.Time
	To                 *time.Time
}

type Repository interface {
	// -------- Working hours --------
	ListWindows(
		ctx context.Context,
		masterID uint,
		dayOfWeek int,
	) ([]models.WorkingHours, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// FindOverlapping returns the first booked appointment of the master
	// overlapping [start, end), or nil. excludeID skips the appointment
	// being rescheduled so it never conflicts with itself.
	FindOverlapping(
		ctx context.Context,
		masterID uint,
		start time.Time,
		end time.Time,
		excludeID *uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		f AppointmentFilter,
	) ([]models.Appointment, error)

	// -------- Unit of work --------

	// WithTx runs fn against a transaction-scoped repository. fn's writes
	// apply atomically or not at all.
	WithTx(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// LockMaster takes an exclusive per-master lock held until the
	// surrounding transaction ends. Must be called inside WithTx. All
	// check-then-act sequences for one master serialize on it; different
	// masters never contend.
	LockMaster(
		ctx context.Context,
		masterID uint,
	) error
}
