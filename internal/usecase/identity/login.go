package identity

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/ids"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

// DefaultPassword is assigned to accounts implicitly created through
// login, where the client never collected one.
const DefaultPassword = "Password@123"

type LoginInput struct {
	Role     string
	Password string
	Name     string
	Email    string
	Phone    string
}

type LoginResult struct {
	Token string
	User  *models.User

	// WorkerID is set when the user has a worker profile.
	WorkerID string
}

type Login struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Login {
	return &Login{repo: repo, audit: audit}
}

// Execute resolves a user for the given role. Admins must match
// password and name exactly. Customers and workers are looked up by
// phone; an unknown phone with a name supplied silently creates the
// account, a leftover of dropping the OTP verification step. The
// returned token is an opaque placeholder, never validated anywhere.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginResult, error) {

	var user *models.User
	var err error

	if in.Role == "admin" {
		user, err = uc.repo.FindAdmin(ctx, in.Name, in.Password)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, httperr.ErrBusiness("invalid_admin_credentials")
		}
	} else {
		user, err = uc.repo.FindByPhoneAndRole(ctx, in.Phone, in.Role)
		if err != nil {
			return nil, err
		}

		if user == nil && in.Name != "" && in.Phone != "" {
			password := in.Password
			if password == "" {
				password = DefaultPassword
			}

			user = &models.User{
				ID:       ids.NewUser(),
				Name:     in.Name,
				Email:    in.Email,
				Phone:    in.Phone,
				Password: password,
				Role:     in.Role,
			}
			if err := uc.repo.CreateUser(ctx, user); err != nil {
				return nil, err
			}

			uc.audit.Dispatch(audit.Event{
				ActorID:  user.ID,
				Action:   "user_registered",
				Entity:   "user",
				EntityID: user.ID,
				Metadata: map[string]string{"role": user.Role, "via": "login"},
			})
		}

		if user == nil {
			return nil, httperr.ErrBusiness("user_not_found")
		}
	}

	result := &LoginResult{
		Token: ids.NewToken(),
		User:  user,
	}

	if in.Role == "worker" {
		workerID, err := uc.repo.WorkerIDForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		result.WorkerID = workerID
	}

	return result, nil
}
