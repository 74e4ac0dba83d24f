package admin

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	dbpkg "github.com/SmartLocalApps/service-finder/internal/db"
	infraRepo "github.com/SmartLocalApps/service-finder/internal/infra/repository"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

func setupAdmin(t *testing.T) (*infraRepo.IdentityGormRepository, *audit.Dispatcher, *gorm.DB) {
	t.Helper()

	database, err := dbpkg.Open(filepath.Join(t.TempDir(), "admin_test.db"))
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(database))
	return infraRepo.NewIdentityGormRepository(database), dispatcher, database
}

// seedUserWithWorkerAndBookings creates one user owning one worker
// profile, with two bookings against that worker.
func seedUserWithWorkerAndBookings(t *testing.T, database *gorm.DB) {
	t.Helper()

	require.NoError(t, database.Create(&models.User{
		ID: "user_1", Name: "Ravi", Phone: "9000000001",
		Password: "secret", Role: "worker",
	}).Error)
	require.NoError(t, database.Create(&models.Worker{
		ID: "worker_1", UserID: "user_1", Service: "plumber",
	}).Error)
	require.NoError(t, database.Create(&models.Booking{
		ID: "book_1", UserID: "user_other", WorkerID: "worker_1",
		ServiceKey: "plumber", Status: "confirmed",
	}).Error)
	require.NoError(t, database.Create(&models.Booking{
		ID: "book_2", UserID: "user_other", WorkerID: "worker_1",
		ServiceKey: "plumber", Status: "confirmed",
	}).Error)
}

func countRows(t *testing.T, database *gorm.DB) (users, workers, bookings int64) {
	t.Helper()

	require.NoError(t, database.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, database.Model(&models.Worker{}).Count(&workers).Error)
	require.NoError(t, database.Model(&models.Booking{}).Count(&bookings).Error)
	return
}

func TestDeleteUserCascade(t *testing.T) {
	repo, dispatcher, database := setupAdmin(t)
	uc := NewDeleteUser(repo, dispatcher)

	seedUserWithWorkerAndBookings(t, database)

	require.NoError(t, uc.Execute(context.Background(), "user_1"))

	users, workers, bookings := countRows(t, database)
	assert.Zero(t, users)
	assert.Zero(t, workers)
	assert.Zero(t, bookings)
}

func TestDeleteUserCascadeIsAtomic(t *testing.T) {
	repo, dispatcher, database := setupAdmin(t)
	uc := NewDeleteUser(repo, dispatcher)

	seedUserWithWorkerAndBookings(t, database)

	// Sabotage the final statement of the cascade: with the users
	// table gone, the whole transaction must roll back.
	require.NoError(t, database.Migrator().RenameTable("users", "users_hidden"))
	err := uc.Execute(context.Background(), "user_1")
	require.Error(t, err)
	require.NoError(t, database.Migrator().RenameTable("users_hidden", "users"))

	users, workers, bookings := countRows(t, database)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, workers)
	assert.EqualValues(t, 2, bookings)
}

func TestDeleteWorkerCascade(t *testing.T) {
	repo, dispatcher, database := setupAdmin(t)
	uc := NewDeleteWorker(repo, dispatcher)

	seedUserWithWorkerAndBookings(t, database)

	require.NoError(t, uc.Execute(context.Background(), "worker_1"))

	users, workers, bookings := countRows(t, database)
	assert.EqualValues(t, 1, users, "owning user survives a worker delete")
	assert.Zero(t, workers)
	assert.Zero(t, bookings)
}
