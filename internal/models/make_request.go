package models

import "time"

// MakeRequest tracks one user message forwarded to the Make workflow.
// The correlation id comes back on /make/callback so the reply lands in
// the right chat.
type MakeRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CorrelationID string `gorm:"size:64;uniqueIndex" json:"correlation_id"`
	ChatID        int64  `gorm:"index" json:"chat_id"`
	UserID        int64  `gorm:"index" json:"user_id"`
	MessageID     *int   `json:"message_id"`

	Status    string `gorm:"size:20;default:'created'" json:"status"`
	LastError string `gorm:"size:500" json:"last_error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	MakeRequestCreated   = "created"
	MakeRequestSent      = "sent"
	MakeRequestFailed    = "failed"
	MakeRequestCompleted = "completed"
)
