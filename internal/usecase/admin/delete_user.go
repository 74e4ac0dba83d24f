package admin

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
)

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

func (uc *DeleteUser) Execute(ctx context.Context, userID string) error {
	if err := uc.repo.DeleteUserCascade(ctx, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: userID,
	})

	return nil
}
