package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RescheduleAppointment struct {
	repo domain.Repository
}

func NewRescheduleAppointment(repo domain.Repository) *RescheduleAppointment {
	return &RescheduleAppointment{repo: repo}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	startAt time.Time,
	endAt time.Time,
) (*models.Appointment, error) {

	if !endAt.After(startAt) {
		return nil, domain.ErrInvalidRange
	}

	var updated *models.Appointment

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil || ap.Status != string(domain.StatusBooked) {
			return domain.ErrAppointmentNotFound
		}

		if err := tx.LockMaster(ctx, ap.MasterID); err != nil {
			return err
		}

		// Re-read under the lock: a concurrent cancel or reschedule may
		// have committed between the first read and the lock.
		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil || ap.Status != string(domain.StatusBooked) {
			return domain.ErrAppointmentNotFound
		}

		windows, err := tx.ListWindows(ctx, ap.MasterID, domain.DayOfWeek(startAt))
		if err != nil {
			return err
		}
		if !domain.FitsWorkingHours(windows, startAt, endAt) {
			return domain.ErrOutsideWorkingHours
		}

		hit, err := tx.FindOverlapping(ctx, ap.MasterID, startAt, endAt, &ap.ID)
		if err != nil {
			return err
		}
		if hit != nil {
			return domain.ErrMasterBusy
		}

		if err := domain.Reschedule(ap, startAt, endAt); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}
