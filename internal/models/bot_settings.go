package models

import "time"

// BotSettings is a singleton row (always id=1).
type BotSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BotToken  string    `gorm:"size:200" json:"-"`
	IsEnabled bool      `gorm:"default:true" json:"is_enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}
