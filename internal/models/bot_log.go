package models

import "time"

type BotLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Level   string `gorm:"size:10;default:'info'" json:"level"`
	Message string `gorm:"size:1000;not null" json:"message"`
	Details string `gorm:"size:5000" json:"details"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

const (
	BotLogInfo    = "info"
	BotLogWarning = "warning"
	BotLogError   = "error"
)
