package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	MasterID           uint
	CustomerTelegramID int64

	StartAt time.Time
	EndAt   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !in.EndAt.After(in.StartAt) {
		return nil, domain.ErrInvalidRange
	}

	var created *models.Appointment

	err := uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		// Serializes every check-then-act for this master; without it two
		// overlapping requests can both pass the conflict check before
		// either commits.
		if err := tx.LockMaster(ctx, in.MasterID); err != nil {
			return err
		}

		windows, err := tx.ListWindows(
			ctx,
			in.MasterID,
			domain.DayOfWeek(in.StartAt),
		)
		if err != nil {
			return err
		}
		if !domain.FitsWorkingHours(windows, in.StartAt, in.EndAt) {
			return domain.ErrOutsideWorkingHours
		}

		hit, err := tx.FindOverlapping(ctx, in.MasterID, in.StartAt, in.EndAt, nil)
		if err != nil {
			return err
		}
		if hit != nil {
			return domain.ErrMasterBusy
		}

		ap := &models.Appointment{
			MasterID:           in.MasterID,
			CustomerTelegramID: in.CustomerTelegramID,
			StartAt:            in.StartAt,
			EndAt:              in.EndAt,
			Status:             string(domain.InitialStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}
