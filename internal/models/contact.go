package models

import "time"

// Contact is an external person in the municipal registry. Contacts have no
// login; they only receive notifications for appointments they are invited to.
type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
