package identity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	dbpkg "github.com/SmartLocalApps/service-finder/internal/db"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	infraRepo "github.com/SmartLocalApps/service-finder/internal/infra/repository"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

func setupIdentity(t *testing.T) (*infraRepo.IdentityGormRepository, *audit.Dispatcher, *gorm.DB) {
	t.Helper()

	database, err := dbpkg.Open(filepath.Join(t.TempDir(), "identity_test.db"))
	require.NoError(t, err)

	dispatcher := audit.NewDispatcher(audit.New(database))
	return infraRepo.NewIdentityGormRepository(database), dispatcher, database
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	repo, dispatcher, _ := setupIdentity(t)
	uc := NewRegister(repo, dispatcher)
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterInput{
		Name: "Asha", Phone: "9000000001", Password: "secret", Role: "customer",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterInput{
		Name: "Another", Phone: "9000000001", Password: "secret", Role: "customer",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "user_exists"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo, dispatcher, _ := setupIdentity(t)
	uc := NewRegister(repo, dispatcher)
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterInput{
		Name: "Asha", Email: "asha@example.com", Phone: "9000000001",
		Password: "secret", Role: "customer",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterInput{
		Name: "Other", Email: "asha@example.com", Phone: "9000000002",
		Password: "secret", Role: "customer",
	})
	assert.True(t, httperr.IsBusiness(err, "user_exists"))

	// The email comparison is exact, so a different casing passes.
	_, err = uc.Execute(ctx, RegisterInput{
		Name: "Cased", Email: "ASHA@example.com", Phone: "9000000003",
		Password: "secret", Role: "customer",
	})
	require.NoError(t, err)
}

func TestCheckDuplicateAfterRegistration(t *testing.T) {
	repo, dispatcher, _ := setupIdentity(t)
	register := NewRegister(repo, dispatcher)
	check := NewCheckDuplicate(repo)
	ctx := context.Background()

	_, err := register.Execute(ctx, RegisterInput{
		Name: "Asha", Email: "asha@example.com", Phone: "9000000001",
		Password: "secret", Role: "customer",
	})
	require.NoError(t, err)

	exists, err := check.Execute(ctx, CheckDuplicateInput{Phone: "9000000001"})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = check.Execute(ctx, CheckDuplicateInput{Name: "ASHA"})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = check.Execute(ctx, CheckDuplicateInput{Email: "ASHA@EXAMPLE.COM"})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = check.Execute(ctx, CheckDuplicateInput{Phone: "9999999999"})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCheckDuplicateWithServiceScope(t *testing.T) {
	repo, dispatcher, _ := setupIdentity(t)
	registerWorker := NewRegisterWorker(repo, dispatcher)
	check := NewCheckDuplicate(repo)
	ctx := context.Background()

	_, err := registerWorker.Execute(ctx, RegisterWorkerInput{
		UserName: "Ravi", UserPhone: "9000000002", UserPassword: "secret",
		Service: "plumber",
	})
	require.NoError(t, err)

	exists, err := check.Execute(ctx, CheckDuplicateInput{
		Phone: "9000000002", Service: "plumber",
	})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = check.Execute(ctx, CheckDuplicateInput{
		Phone: "9000000002", Service: "electrician",
	})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLoginAutoCreatesUnknownUser(t *testing.T) {
	repo, dispatcher, database := setupIdentity(t)
	uc := NewLogin(repo, dispatcher)
	ctx := context.Background()

	result, err := uc.Execute(ctx, LoginInput{
		Role: "customer", Name: "Meera", Phone: "9000000003",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "customer", result.User.Role)

	var stored models.User
	require.NoError(t, database.Where("phone = ?", "9000000003").First(&stored).Error)
	assert.Equal(t, DefaultPassword, stored.Password)

	// Second login finds the same account instead of creating another.
	again, err := uc.Execute(ctx, LoginInput{
		Role: "customer", Name: "Meera", Phone: "9000000003",
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
}

func TestLoginUnknownWithoutNameFails(t *testing.T) {
	repo, dispatcher, _ := setupIdentity(t)
	uc := NewLogin(repo, dispatcher)

	_, err := uc.Execute(context.Background(), LoginInput{
		Role: "customer", Phone: "9000000004",
	})
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestLoginAdminStrictCheck(t *testing.T) {
	repo, dispatcher, database := setupIdentity(t)
	require.NoError(t, dbpkg.Seed(database))
	uc := NewLogin(repo, dispatcher)
	ctx := context.Background()

	_, err := uc.Execute(ctx, LoginInput{
		Role: "admin", Name: "Admin", Password: "wrong",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_admin_credentials"))

	// Name comparison is case-insensitive, password is exact.
	result, err := uc.Execute(ctx, LoginInput{
		Role: "admin", Name: "aDmIn", Password: "Admin@123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.User.Role)
}

func TestRegisterWorkerReusesUserByPhone(t *testing.T) {
	repo, dispatcher, database := setupIdentity(t)
	uc := NewRegisterWorker(repo, dispatcher)
	ctx := context.Background()

	first, err := uc.Execute(ctx, RegisterWorkerInput{
		UserName: "Ravi", UserPhone: "9000000005", UserPassword: "secret",
		Service: "plumber", Cost: 300,
	})
	require.NoError(t, err)

	second, err := uc.Execute(ctx, RegisterWorkerInput{
		UserName: "Ravi", UserPhone: "9000000005", UserPassword: "secret",
		Service: "electrician", Cost: 400,
	})
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.WorkerID, second.WorkerID)

	var userCount, workerCount int64
	require.NoError(t, database.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, database.Model(&models.Worker{}).Count(&workerCount).Error)
	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, 2, workerCount)
}
