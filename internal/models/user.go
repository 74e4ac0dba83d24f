package models

import "time"

type User struct {
	ID    string `gorm:"primaryKey;size:64" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Stored in plaintext for parity with the legacy deployment.
	Password string `gorm:"size:100;not null" json:"-"`
	Role     string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
