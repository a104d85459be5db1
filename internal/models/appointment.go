package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`

	// Civil values under the system offset. Date is "2006-01-02", times are
	// zero-padded "15:04" so the SQL overlap predicate compares correctly.
	// EndTime is exclusive.
	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status     string `gorm:"size:20;default:'scheduled'" json:"status"`
	Visibility string `gorm:"size:20;default:'private'" json:"visibility"`

	RemindByEmail bool `json:"remind_by_email"`
	RemindBySMS   bool `json:"remind_by_sms"`

	Contacts   []Contact `gorm:"many2many:appointment_contacts;" json:"contacts"`
	SharedWith []User    `gorm:"many2many:appointment_shared_users;" json:"shared_with"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
