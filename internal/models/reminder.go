package models

import "time"

type Reminder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	FireAt time.Time `gorm:"index" json:"fire_at"`
	State  string    `gorm:"size:20;default:'scheduled';index" json:"state"`

	// Joined per-attempt failure reasons from the last dispatch, kept for
	// diagnostics only.
	Error string `gorm:"type:text" json:"error,omitempty"`

	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
