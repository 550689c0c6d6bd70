package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID                 uint       `json:"id"`
	MasterID           uint       `json:"master_id"`
	CustomerTelegramID int64      `json:"customer_telegram_id"`
	StartAt            time.Time  `json:"start_at"`
	EndAt              time.Time  `json:"end_at"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}

func AppointmentFromModel(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:                 ap.ID,
		MasterID:           ap.MasterID,
		CustomerTelegramID: ap.CustomerTelegramID,
		StartAt:            ap.StartAt,
		EndAt:              ap.EndAt,
		Status:             ap.Status,
		CancelledAt:        ap.CancelledAt,
	}
}

type MasterDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ExperienceYears *int   `json:"experience_years,omitempty"`
	IsActive        bool   `json:"is_active"`
	PhotoURL        string `json:"photo_url,omitempty"`
}

func MasterFromModel(m *models.Master, photoURL string) MasterDTO {
	return MasterDTO{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		ExperienceYears: m.ExperienceYears,
		IsActive:        m.IsActive,
		PhotoURL:        photoURL,
	}
}

type WorkingHoursDTO struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
