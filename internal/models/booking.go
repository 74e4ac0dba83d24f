package models

import "time"

type Booking struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	UserID   string `gorm:"size:64;not null;index" json:"user_id"`
	WorkerID string `gorm:"size:64;not null;index" json:"worker_id"`

	ServiceKey string  `gorm:"size:50;not null" json:"service_key"`
	Slot       string  `gorm:"size:100" json:"slot"`
	Price      float64 `json:"price"`

	// Free-form status string. `confirmed` is the creation default;
	// updates overwrite it with whatever the caller sends.
	Status string `gorm:"size:30;default:'confirmed'" json:"status"`

	Address string  `gorm:"size:255" json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Notes   string  `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
