package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/booking"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	bookingID string,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID string,
) ([]domain.UserRow, error) {

	var rows []domain.UserRow
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS id, users.name AS worker_name,
			bookings.service_key, bookings.slot, bookings.price,
			bookings.status, bookings.created_at`).
		Joins("JOIN workers ON workers.id = bookings.worker_id").
		Joins("JOIN users ON users.id = workers.user_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListForWorker(
	ctx context.Context,
	workerID string,
) ([]domain.WorkerRow, error) {

	var rows []domain.WorkerRow
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS id, users.name AS user_name,
			bookings.service_key, bookings.slot, bookings.price,
			bookings.status, bookings.created_at`).
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.worker_id = ?", workerID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]domain.AdminRow, error) {

	var rows []domain.AdminRow
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS id, bookings.user_id, bookings.worker_id,
			bookings.service_key, bookings.slot, bookings.price,
			bookings.status, users.name AS user_name, bookings.created_at`).
		Joins("JOIN users ON users.id = bookings.user_id").
		Order("bookings.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *BookingGormRepository) StatsForWorker(
	ctx context.Context,
	workerID string,
) (domain.WorkerStats, error) {

	var stats domain.WorkerStats
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COUNT(*) AS total_bookings, COALESCE(SUM(price), 0) AS earnings").
		Where("worker_id = ? AND status = ?", workerID, domain.StatusCompleted).
		Scan(&stats).Error; err != nil {
		return domain.WorkerStats{}, err
	}
	return stats, nil
}

func (r *BookingGormRepository) StatsForAdmin(
	ctx context.Context,
) (domain.AdminStats, error) {

	var stats domain.AdminStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return domain.AdminStats{}, err
	}
	if err := db.Model(&models.Worker{}).Count(&stats.TotalWorkers).Error; err != nil {
		return domain.AdminStats{}, err
	}
	if err := db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return domain.AdminStats{}, err
	}
	if err := db.Model(&models.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", domain.StatusCompleted).
		Scan(&stats.TotalEarnings).Error; err != nil {
		return domain.AdminStats{}, err
	}

	// No verification workflow exists, so nothing is ever pending.
	stats.PendingVerifications = 0
	return stats, nil
}
