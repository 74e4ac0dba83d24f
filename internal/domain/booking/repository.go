package booking

import (
	"context"
	"time"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

// UserRow is a booking annotated with the worker's display name, as
// shown on a customer's booking list.
type UserRow struct {
	ID         string
	WorkerName string
	ServiceKey string
	Slot       string
	Price      float64
	Status     string
	CreatedAt  time.Time
}

// WorkerRow is a booking annotated with the customer's name, as
// shown on a worker's job list.
type WorkerRow struct {
	ID         string
	UserName   string
	ServiceKey string
	Slot       string
	Price      float64
	Status     string
	CreatedAt  time.Time
}

// AdminRow is the unabridged booking listing for the admin panel.
type AdminRow struct {
	ID         string
	UserID     string
	WorkerID   string
	ServiceKey string
	Slot       string
	Price      float64
	Status     string
	UserName   string
	CreatedAt  time.Time
}

// WorkerStats aggregates a worker's completed bookings only. The
// count deliberately shares the completed-status filter with the
// earnings sum; it is not a lifetime booking count.
type WorkerStats struct {
	Earnings      float64
	TotalBookings int64
}

// AdminStats are marketplace-wide totals. Counts span every status;
// only earnings are restricted to completed bookings.
type AdminStats struct {
	TotalUsers           int64
	TotalWorkers         int64
	TotalBookings        int64
	TotalEarnings        float64
	PendingVerifications int64
}

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error

	// UpdateStatus overwrites the status unconditionally. An
	// unknown booking id is not an error.
	UpdateStatus(ctx context.Context, bookingID, status string) error

	ListForUser(ctx context.Context, userID string) ([]UserRow, error)
	ListForWorker(ctx context.Context, workerID string) ([]WorkerRow, error)
	ListAll(ctx context.Context) ([]AdminRow, error)

	StatsForWorker(ctx context.Context, workerID string) (WorkerStats, error)
	StatsForAdmin(ctx context.Context) (AdminStats, error)
}
