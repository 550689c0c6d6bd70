package models

import "time"

type Master struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string `gorm:"size:200;not null" json:"name"`
	Description     string `gorm:"size:2000" json:"description"`
	ExperienceYears *int   `json:"experience_years"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	// Object key in media storage, e.g. "masters/1.webp" (one photo per master)
	PhotoPath string `gorm:"size:500" json:"-"`

	WorkingHours []WorkingHours `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
