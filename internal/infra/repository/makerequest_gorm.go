package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MakeRequestGormRepository struct {
	db *gorm.DB
}

func NewMakeRequestGormRepository(db *gorm.DB) *MakeRequestGormRepository {
	return &MakeRequestGormRepository{db: db}
}

// FindByCorrelationID returns the tracked request, or nil when the
// correlation id is unknown.
func (r *MakeRequestGormRepository) FindByCorrelationID(
	ctx context.Context,
	correlationID string,
) (*models.MakeRequest, error) {

	var mr models.MakeRequest
	if err := r.db.WithContext(ctx).
		Where("correlation_id = ?", correlationID).
		First(&mr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &mr, nil
}

func (r *MakeRequestGormRepository) MarkCompleted(
	ctx context.Context,
	mr *models.MakeRequest,
) error {
	return r.db.WithContext(ctx).
		Model(mr).
		Update("status", models.MakeRequestCompleted).
		Error
}
