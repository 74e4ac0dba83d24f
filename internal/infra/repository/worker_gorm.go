package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/worker"
)

type WorkerGormRepository struct {
	db *gorm.DB
}

func NewWorkerGormRepository(db *gorm.DB) *WorkerGormRepository {
	return &WorkerGormRepository{db: db}
}

const profileColumns = "workers.*, users.name AS name, users.phone AS phone, users.email AS email"

func (r *WorkerGormRepository) ListVerified(
	ctx context.Context,
) ([]domain.Profile, error) {

	var profiles []domain.Profile
	if err := r.db.WithContext(ctx).
		Table("workers").
		Select(profileColumns).
		Joins("JOIN users ON users.id = workers.user_id").
		Where("workers.verified = ?", true).
		Scan(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *WorkerGormRepository) GetProfile(
	ctx context.Context,
	workerID string,
) (*domain.Profile, error) {

	var profiles []domain.Profile
	if err := r.db.WithContext(ctx).
		Table("workers").
		Select(profileColumns).
		Joins("JOIN users ON users.id = workers.user_id").
		Where("workers.id = ?", workerID).
		Limit(1).
		Scan(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}
