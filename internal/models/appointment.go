package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MasterID uint   `gorm:"index:ix_appointments_master_time" json:"master_id"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CustomerTelegramID int64 `gorm:"index" json:"customer_telegram_id"`

	StartAt time.Time `gorm:"index:ix_appointments_master_time" json:"start_at"`
	EndAt   time.Time `gorm:"index:ix_appointments_master_time" json:"end_at"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
