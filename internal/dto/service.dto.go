package dto

import (
	"encoding/json"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

type ServiceDTO struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"displayName"`
	Icon        string   `json:"icon"`
	Categories  []string `json:"categories"`
	IsCustom    bool     `json:"isCustom"`
}

func NewServiceDTO(s models.Service) ServiceDTO {
	var categories []string
	if s.Categories != "" {
		// Stored opaque; anything unparseable degrades to an empty
		// list rather than failing the listing.
		_ = json.Unmarshal([]byte(s.Categories), &categories)
	}
	if categories == nil {
		categories = []string{}
	}

	return ServiceDTO{
		Key:         s.Key,
		DisplayName: s.DisplayName,
		Icon:        s.Icon,
		Categories:  categories,
		IsCustom:    s.IsCustom,
	}
}
