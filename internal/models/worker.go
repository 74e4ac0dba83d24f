package models

type Worker struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	UserID string `gorm:"size:64;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`

	Service string  `gorm:"size:50;not null" json:"service"`
	Cost    float64 `json:"cost"`

	// A coordinate of exactly 0 is treated as "not provided".
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Bio string `gorm:"size:500" json:"bio"`

	// Pointer so an explicit false reaches the INSERT instead of
	// being dropped in favor of the column default.
	Verified *bool `gorm:"default:true" json:"verified"`

	Gender     string  `gorm:"size:20" json:"gender"`
	Experience int     `gorm:"default:0" json:"experience"`
	Rating     float64 `gorm:"default:0" json:"rating"`

	TotalReviews int `gorm:"default:0" json:"total_reviews"`

	// JSON object of available time slots, stored opaque and
	// returned to clients unchanged.
	Slots string `gorm:"type:text" json:"slots"`
}
