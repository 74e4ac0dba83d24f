package identity

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
	"github.com/SmartLocalApps/service-finder/internal/httperr"
	"github.com/SmartLocalApps/service-finder/internal/ids"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{repo: repo, audit: audit}
}

// Execute creates a user after an application-level duplicate check
// on exact phone or email. The check and insert are separate
// statements; two simultaneous registrations can both pass it.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	exists, err := uc.repo.HasUserConflict(ctx, in.Phone, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("user_exists")
	}

	user := &models.User{
		ID:       ids.NewUser(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
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
		Metadata: map[string]string{"role": user.Role},
	})

	return user, nil
}
