package models

import "time"

// WorkingHours is one availability window of a master for a weekday.
// Weekday is 0=Monday .. 6=Sunday. A master may have several windows per
// day; they are treated as a union. No rows for a day means closed.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	MasterID uint `gorm:"index:ix_working_hours_master_day" json:"master_id"`

	DayOfWeek int `gorm:"index:ix_working_hours_master_day" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
