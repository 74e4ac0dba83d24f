package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *IdentityGormRepository) FindByPhoneAndRole(
	ctx context.Context,
	phone string,
	role string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND phone = ?", role, phone).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) FindByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) FindAdmin(
	ctx context.Context,
	name string,
	password string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND password = ? AND LOWER(name) = LOWER(?)",
			"admin", password, name).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) WorkerIDForUser(
	ctx context.Context,
	userID string,
) (string, error) {

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Worker{}).
		Where("user_id = ?", userID).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityGormRepository) CreateWorkerProfile(
	ctx context.Context,
	user *models.User,
	w *models.Worker,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if user != nil {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
		}
		return tx.Create(w).Error
	})
}

// --------------------------------------------------
// Duplicate checks
// --------------------------------------------------

func (r *IdentityGormRepository) HasUserConflict(
	ctx context.Context,
	phone string,
	email string,
) (bool, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})

	// Empty values are treated as "not supplied", never as a match
	// against rows that happen to store an empty field.
	switch {
	case phone != "" && email != "":
		q = q.Where("phone = ? OR email = ?", phone, email)
	case phone != "":
		q = q.Where("phone = ?", phone)
	case email != "":
		q = q.Where("email = ?", email)
	default:
		return false, nil
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *IdentityGormRepository) HasDuplicate(
	ctx context.Context,
	phone string,
	name string,
	email string,
) (bool, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})

	if phone != "" {
		q = q.Where(
			"phone = ? OR LOWER(name) = LOWER(?) OR (email != '' AND LOWER(email) = LOWER(?))",
			phone, name, email,
		)
	} else {
		q = q.Where(
			"LOWER(name) = LOWER(?) OR (email != '' AND LOWER(email) = LOWER(?))",
			name, email,
		)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *IdentityGormRepository) HasWorkerDuplicate(
	ctx context.Context,
	phone string,
	name string,
	service string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN workers ON users.id = workers.user_id").
		Where("(users.phone = ? OR LOWER(users.name) = LOWER(?)) AND workers.service = ?",
			phone, name, service).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Cascading deletes
// --------------------------------------------------

func (r *IdentityGormRepository) DeleteUserCascade(
	ctx context.Context,
	userID string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		var workerIDs []string
		if err := tx.Model(&models.Worker{}).
			Where("user_id = ?", userID).
			Pluck("id", &workerIDs).Error; err != nil {
			return err
		}

		if len(workerIDs) > 0 {
			if err := tx.Where("worker_id IN ?", workerIDs).
				Delete(&models.Booking{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&models.Worker{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).
			Delete(&models.User{}).Error
	})
}

func (r *IdentityGormRepository) DeleteWorkerCascade(
	ctx context.Context,
	workerID string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", workerID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", workerID).
			Delete(&models.Worker{}).Error
	})
}
