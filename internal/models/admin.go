package models

import "time"

// Admin is a bootstrap operator account identified by Telegram id.
type Admin struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TelegramID int64     `gorm:"uniqueIndex" json:"telegram_id"`
	CreatedAt  time.Time `json:"created_at"`
}
