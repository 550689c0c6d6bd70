package booking

import (
	"context"
	"errors"
	"testing"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addMaster(1, nineToSix())
	id := repo.addAppointment(models.Appointment{
		MasterID: 1,
		StartAt:  monday(10, 0),
		EndAt:    monday(11, 0),
	})
	uc := NewCancelAppointment(repo)

	ap, err := uc.Execute(context.Background(), id)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Errorf("cancelled_at not set")
	}

	// the slot is free again
	create := NewCreateAppointment(repo)
	if _, err := create.Execute(context.Background(), CreateAppointmentInput{
		MasterID: 1,
		StartAt:  monday(10, 0),
		EndAt:    monday(11, 0),
	}); err != nil {
		t.Fatalf("rebooking cancelled slot error = %v", err)
	}
}

func TestCancelAppointment_Twice(t *testing.T) {
	repo := newFakeRepo()
	repo.addMaster(1, nineToSix())
	id := repo.addAppointment(models.Appointment{
		MasterID: 1,
		StartAt:  monday(10, 0),
		EndAt:    monday(11, 0),
	})
	uc := NewCancelAppointment(repo)

	if _, err := uc.Execute(context.Background(), id); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}

	_, err := uc.Execute(context.Background(), id)
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("second Execute() error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo)

	_, err := uc.Execute(context.Background(), 42)
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("error = %v, want ErrAppointmentNotFound", err)
	}
}

func TestListAppointments_Filter(t *testing.T) {
	repo := newFakeRepo()
	repo.addMaster(1, nineToSix())
	repo.addMaster(2, nineToSix())

	repo.addAppointment(models.Appointment{MasterID: 1, CustomerTelegramID: 10, StartAt: monday(10, 0), EndAt: monday(11, 0)})
	repo.addAppointment(models.Appointment{MasterID: 2, CustomerTelegramID: 10, StartAt: monday(12, 0), EndAt: monday(13, 0)})
	repo.addAppointment(models.Appointment{MasterID: 1, CustomerTelegramID: 20, StartAt: monday(14, 0), EndAt: monday(15, 0), Status: string(domain.StatusCancelled)})

	uc := NewListAppointments(repo)

	masterID := uint(1)
	aps, err := uc.Execute(context.Background(), domain.AppointmentFilter{MasterID: &masterID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// cancelled rows stay visible in listings
	if len(aps) != 2 {
		t.Fatalf("len = %d, want 2", len(aps))
	}

	customer := int64(10)
	aps, err = uc.Execute(context.Background(), domain.AppointmentFilter{CustomerTelegramID: &customer})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(aps) != 2 {
		t.Fatalf("len = %d, want 2", len(aps))
	}

	from := monday(11, 30)
	aps, err = uc.Execute(context.Background(), domain.AppointmentFilter{From: &from})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(aps) != 2 {
		t.Fatalf("len = %d, want 2", len(aps))
	}
}
