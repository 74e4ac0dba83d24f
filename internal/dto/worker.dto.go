package dto

import (
	"encoding/json"

	"github.com/SmartLocalApps/service-finder/internal/domain/worker"
)

// Worker responses expose both `id` and `_id`; older clients still
// read the Mongo-style key.

type WorkerDTO struct {
	ID           string          `json:"id"`
	LegacyID     string          `json:"_id"`
	UserID       string          `json:"userId"`
	Service      string          `json:"service"`
	Cost         float64         `json:"cost"`
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	Bio          string          `json:"bio"`
	Verified     bool            `json:"verified"`
	Gender       string          `json:"gender"`
	Experience   int             `json:"experience"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"totalReviews"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Distance     float64         `json:"distance"`
	Slots        json.RawMessage `json:"slots"`
}

type WorkerDetailDTO struct {
	ID            string          `json:"id"`
	LegacyID      string          `json:"_id"`
	UserID        string          `json:"userId"`
	Service       string          `json:"service"`
	Cost          float64         `json:"cost"`
	Lat           float64         `json:"lat"`
	Lng           float64         `json:"lng"`
	Bio           string          `json:"bio"`
	Verified      bool            `json:"verified"`
	Gender        string          `json:"gender"`
	Experience    int             `json:"experience"`
	Rating        float64         `json:"rating"`
	TotalReviews  int             `json:"totalReviews"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Earnings      float64         `json:"earnings"`
	TotalBookings int64           `json:"totalBookings"`
	Available     bool            `json:"available"`
	Slots         json.RawMessage `json:"slots"`
}

func NewWorkerDTO(p worker.Profile, distance float64) WorkerDTO {
	return WorkerDTO{
		ID:           p.ID,
		LegacyID:     p.ID,
		UserID:       p.UserID,
		Service:      p.Service,
		Cost:         p.Cost,
		Lat:          p.Lat,
		Lng:          p.Lng,
		Bio:          p.Bio,
		Verified:     p.Verified,
		Gender:       p.Gender,
		Experience:   p.Experience,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		Name:         p.Name,
		Phone:        p.Phone,
		Distance:     distance,
		Slots:        rawSlots(p.Slots),
	}
}

func NewWorkerDetailDTO(p worker.Profile, earnings float64, totalBookings int64) WorkerDetailDTO {
	return WorkerDetailDTO{
		ID:            p.ID,
		LegacyID:      p.ID,
		UserID:        p.UserID,
		Service:       p.Service,
		Cost:          p.Cost,
		Lat:           p.Lat,
		Lng:           p.Lng,
		Bio:           p.Bio,
		Verified:      p.Verified,
		Gender:        p.Gender,
		Experience:    p.Experience,
		Rating:        p.Rating,
		TotalReviews:  p.TotalReviews,
		Name:          p.Name,
		Phone:         p.Phone,
		Earnings:      earnings,
		TotalBookings: totalBookings,
		Available:     true,
		Slots:         rawSlots(p.Slots),
	}
}

func rawSlots(slots string) json.RawMessage {
	if slots == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(slots)
}
