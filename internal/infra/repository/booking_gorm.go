package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Advisory lock namespace for per-master scheduling locks, so they cannot
// collide with other advisory locks on the same database.
const masterLockNamespace = 0x5a10

type BookingGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *BookingGormRepository) ListWindows(
	ctx context.Context,
	masterID uint,
	dayOfWeek int,
) ([]models.WorkingHours, error) {

	var windows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("master_id = ? AND day_of_week = ?", masterID, dayOfWeek).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) FindOverlapping(
	ctx context.Context,
	masterID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"master_id = ? AND status = ? AND start_at < ? AND end_at > ?",
			masterID,
			string(domain.StatusBooked),
			end,
			start,
		)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var ap models.Appointment
	if err := q.Order("start_at ASC").First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.MasterID != nil {
		q = q.Where("master_id = ?", *f.MasterID)
	}
	if f.CustomerTelegramID != nil {
		q = q.Where("customer_telegram_id = ?", *f.CustomerTelegramID)
	}
	if f.From != nil {
		q = q.Where("start_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_at < ?", *f.To)
	}

	var aps []models.Appointment
	if err := q.Order("start_at ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *BookingGormRepository) WithTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, inTx: true})
	})
}

// LockMaster blocks until the per-master advisory lock is granted. The
// lock is released automatically when the transaction commits or rolls
// back (pg_advisory_xact_lock semantics).
func (r *BookingGormRepository) LockMaster(
	ctx context.Context,
	masterID uint,
) error {
	if !r.inTx {
		return errors.New("repository: LockMaster called outside a transaction")
	}

	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", masterLockNamespace, int32(masterID)).
		Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
