package identity

import (
	"context"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
)

type CheckDuplicateInput struct {
	Phone   string
	Name    string
	Email   string
	Service string
}

type CheckDuplicate struct {
	repo domain.Repository
}

func NewCheckDuplicate(repo domain.Repository) *CheckDuplicate {
	return &CheckDuplicate{repo: repo}
}

// Execute answers an existence question only; it never reveals which
// entity collided. With a service given it asks "does this person
// already offer that service", otherwise "is this identity taken".
func (uc *CheckDuplicate) Execute(
	ctx context.Context,
	in CheckDuplicateInput,
) (bool, error) {

	if in.Service != "" {
		return uc.repo.HasWorkerDuplicate(ctx, in.Phone, in.Name, in.Service)
	}
	return uc.repo.HasDuplicate(ctx, in.Phone, in.Name, in.Email)
}
