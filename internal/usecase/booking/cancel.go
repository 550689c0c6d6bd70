package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo domain.Repository
}

func NewCancelAppointment(repo domain.Repository) *CancelAppointment {
	return &CancelAppointment{repo: repo}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var cancelled *models.Appointment

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil {
			return domain.ErrAppointmentNotFound
		}

		// Same lock as create/reschedule so a cancel can never interleave
		// with an in-flight reschedule of the same master.
		if err := tx.LockMaster(ctx, ap.MasterID); err != nil {
			return err
		}

		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		if ap == nil {
			return domain.ErrAppointmentNotFound
		}

		if err := domain.Cancel(ap, timezone.Now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		cancelled = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return cancelled, nil
}
