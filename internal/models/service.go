package models

type Service struct {
	Key         string `gorm:"primaryKey;size:50" json:"key"`
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Icon        string `gorm:"size:10" json:"icon"`

	// JSON array of sub-category labels, stored opaque.
	Categories string `gorm:"type:text" json:"categories"`

	IsCustom bool `gorm:"default:false" json:"is_custom"`
}
