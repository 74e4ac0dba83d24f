package identity

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

// Lookup methods return (nil, nil) when no row matches; callers
// branch on the nil user rather than on a not-found error.
type Repository interface {
	FindByPhoneAndRole(ctx context.Context, phone, role string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)

	// FindAdmin matches role `admin` on plaintext password equality
	// and a case-insensitive name.
	FindAdmin(ctx context.Context, name, password string) (*models.User, error)

	CreateUser(ctx context.Context, u *models.User) error

	// CreateWorkerProfile inserts the worker row and, when user is
	// non-nil, the owning user row in the same transaction.
	CreateWorkerProfile(ctx context.Context, user *models.User, w *models.Worker) error

	// WorkerIDForUser returns the id of any worker profile owned by
	// the user, or "" when none exists.
	WorkerIDForUser(ctx context.Context, userID string) (string, error)

	// HasUserConflict checks registration uniqueness: an exact phone
	// or exact (case-sensitive) email match. Empty arguments are
	// skipped rather than compared.
	HasUserConflict(ctx context.Context, phone, email string) (bool, error)

	// HasDuplicate mirrors the availability pre-check: exact phone,
	// case-insensitive name, or case-insensitive non-empty email.
	HasDuplicate(ctx context.Context, phone, name, email string) (bool, error)

	// HasWorkerDuplicate checks whether a user matched by phone or
	// case-insensitive name already offers the given service.
	HasWorkerDuplicate(ctx context.Context, phone, name, service string) (bool, error)

	// DeleteUserCascade removes a user together with all dependent
	// rows. Order matters for foreign keys: the user's own bookings,
	// then bookings against each worker profile the user owns, then
	// the worker rows, then the user. All-or-nothing.
	DeleteUserCascade(ctx context.Context, userID string) error

	// DeleteWorkerCascade removes a worker and its bookings.
	DeleteWorkerCascade(ctx context.Context, workerID string) error
}
