package models

import "time"

// Review is part of the persisted schema but has no endpoints yet;
// the table is kept so existing databases keep their rows.
type Review struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	BookingID string  `gorm:"size:64;not null" json:"booking_id"`
	UserID    string  `gorm:"size:64;not null" json:"user_id"`
	WorkerID  string  `gorm:"size:64;not null" json:"worker_id"`
	Rating    float64 `json:"rating"`
	Comments  string  `gorm:"size:500" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}
