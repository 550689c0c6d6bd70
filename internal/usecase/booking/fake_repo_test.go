package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. LockMaster takes a real per-master
// mutex held until WithTx returns, so concurrent Execute calls serialize
// exactly like they would on the database lock.
type fakeRepo struct {
	mu sync.Mutex

	windows      map[uint][]models.WorkingHours
	appointments map[uint]models.Appointment
	nextID       uint

	locks map[uint]*sync.Mutex
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		windows:      map[uint][]models.WorkingHours{},
		appointments: map[uint]models.Appointment{},
		locks:        map[uint]*sync.Mutex{},
	}
}

func (r *fakeRepo) addMaster(id uint, wins ...models.WorkingHours) {
	for i := range wins {
		wins[i].MasterID = id
	}
	r.windows[id] = wins
}

func (r *fakeRepo) addAppointment(ap models.Appointment) uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	if ap.Status == "" {
		ap.Status = string(domain.StatusBooked)
	}
	r.appointments[ap.ID] = ap
	return ap.ID
}

func (r *fakeRepo) ListWindows(_ context.Context, masterID uint, dayOfWeek int) ([]models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WorkingHours
	for _, wh := range r.windows[masterID] {
		if wh.DayOfWeek == dayOfWeek {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := ap
	return &cp, nil
}

func (r *fakeRepo) FindOverlapping(_ context.Context, masterID uint, start, end time.Time, excludeID *uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.MasterID != masterID || ap.Status != string(domain.StatusBooked) {
			continue
		}
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if domain.Overlaps(ap.StartAt, ap.EndAt, start, end) {
			cp := ap
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.MasterID != nil && ap.MasterID != *f.MasterID {
			continue
		}
		if f.CustomerTelegramID != nil && ap.CustomerTelegramID != *f.CustomerTelegramID {
			continue
		}
		if f.From != nil && ap.StartAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !ap.StartAt.Before(*f.To) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) WithTx(_ context.Context, fn func(domain.Repository) error) error {
	tx := &fakeTx{repo: r}
	err := fn(tx)
	tx.release()
	return err
}

func (r *fakeRepo) LockMaster(context.Context, uint) error {
	return errors.New("LockMaster called outside a transaction")
}

// fakeTx delegates to the shared store and owns the master locks taken
// during the callback.
type fakeTx struct {
	repo *fakeRepo
	held []*sync.Mutex
}

func (t *fakeTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *fakeTx) LockMaster(_ context.Context, masterID uint) error {
	t.repo.mu.Lock()
	l, ok := t.repo.locks[masterID]
	if !ok {
		l = &sync.Mutex{}
		t.repo.locks[masterID] = l
	}
	t.repo.mu.Unlock()

	l.Lock()
	t.held = append(t.held, l)
	return nil
}

func (t *fakeTx) ListWindows(ctx context.Context, masterID uint, dayOfWeek int) ([]models.WorkingHours, error) {
	return t.repo.ListWindows(ctx, masterID, dayOfWeek)
}

func (t *fakeTx) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return t.repo.GetAppointment(ctx, id)
}

func (t *fakeTx) FindOverlapping(ctx context.Context, masterID uint, start, end time.Time, excludeID *uint) (*models.Appointment, error) {
	return t.repo.FindOverlapping(ctx, masterID, start, end, excludeID)
}

func (t *fakeTx) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return t.repo.CreateAppointment(ctx, ap)
}

func (t *fakeTx) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return t.repo.UpdateAppointment(ctx, ap)
}

func (t *fakeTx) ListAppointments(ctx context.Context, f domain.AppointmentFilter) ([]models.Appointment, error) {
	return t.repo.ListAppointments(ctx, f)
}

func (t *fakeTx) WithTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(t)
}

var (
	_ domain.Repository = (*fakeRepo)(nil)
	_ domain.Repository = (*fakeTx)(nil)
)
