package botlog

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(level, message, details string) error {
	entry := models.BotLog{
		Level:   level,
		Message: message,
		Details: details,
	}

	return l.db.Create(&entry).Error
}
