package dto

import (
	"time"

	"github.com/SmartLocalApps/service-finder/internal/domain/booking"
)

type UserBookingDTO struct {
	ID         string    `json:"_id"`
	WorkerName string    `json:"workerName"`
	Service    string    `json:"service"`
	Slot       string    `json:"slot"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type WorkerBookingDTO struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Service   string    `json:"service"`
	Slot      string    `json:"slot"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminBookingDTO struct {
	ID         string    `json:"_id"`
	UserID     string    `json:"userId"`
	WorkerID   string    `json:"workerId"`
	ServiceKey string    `json:"serviceKey"`
	Slot       string    `json:"slot"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	UserName   string    `json:"userName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewUserBookingDTOs(rows []booking.UserRow) []UserBookingDTO {
	out := make([]UserBookingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, UserBookingDTO{
			ID:         r.ID,
			WorkerName: r.WorkerName,
			Service:    r.ServiceKey,
			Slot:       r.Slot,
			Price:      r.Price,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out
}

func NewWorkerBookingDTOs(rows []booking.WorkerRow) []WorkerBookingDTO {
	out := make([]WorkerBookingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, WorkerBookingDTO{
			ID:        r.ID,
			UserName:  r.UserName,
			Service:   r.ServiceKey,
			Slot:      r.Slot,
			Price:     r.Price,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

func NewAdminBookingDTOs(rows []booking.AdminRow) []AdminBookingDTO {
	out := make([]AdminBookingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, AdminBookingDTO{
			ID:         r.ID,
			UserID:     r.UserID,
			WorkerID:   r.WorkerID,
			ServiceKey: r.ServiceKey,
			Slot:       r.Slot,
			Price:      r.Price,
			Status:     r.Status,
			UserName:   r.UserName,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out
}
