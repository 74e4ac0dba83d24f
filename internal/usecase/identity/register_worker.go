package identity

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
	"github.com/SmartLocalApps/service-finder/internal/ids"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

type RegisterWorkerInput struct {
	UserName     string
	UserEmail    string
	UserPhone    string
	UserPassword string

	Service    string
	Cost       float64
	Lat        float64
	Lng        float64
	Bio        string
	Gender     string
	Experience int

	// Raw slot map, stored without interpretation.
	Slots string
}

type RegisterWorkerResult struct {
	Token    string
	UserID   string
	UserName string
	WorkerID string
}

type RegisterWorker struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterWorker(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterWorker {
	return &RegisterWorker{repo: repo, audit: audit}
}

// Execute attaches a new worker profile to the user matching the
// given phone, creating the user when absent. A user may hold
// several profiles, one per offered service; no duplicate check is
// applied here.
func (uc *RegisterWorker) Execute(
	ctx context.Context,
	in RegisterWorkerInput,
) (*RegisterWorkerResult, error) {

	existing, err := uc.repo.FindByPhone(ctx, in.UserPhone)
	if err != nil {
		return nil, err
	}

	var newUser *models.User
	userID := ""
	if existing != nil {
		userID = existing.ID
	} else {
		newUser = &models.User{
			ID:       ids.NewUser(),
			Name:     in.UserName,
			Email:    in.UserEmail,
			Phone:    in.UserPhone,
			Password: in.UserPassword,
			Role:     "worker",
		}
		userID = newUser.ID
	}

	slots := in.Slots
	if slots == "" {
		slots = "{}"
	}

	verified := true
	w := &models.Worker{
		ID:         ids.NewWorker(),
		UserID:     userID,
		Service:    in.Service,
		Cost:       in.Cost,
		Lat:        in.Lat,
		Lng:        in.Lng,
		Bio:        in.Bio,
		Verified:   &verified,
		Gender:     in.Gender,
		Experience: in.Experience,
		Slots:      slots,
	}

	if err := uc.repo.CreateWorkerProfile(ctx, newUser, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "worker_registered",
		Entity:   "worker",
		EntityID: w.ID,
		Metadata: map[string]string{"service": w.Service},
	})

	return &RegisterWorkerResult{
		Token:    ids.NewToken(),
		UserID:   userID,
		UserName: in.UserName,
		WorkerID: w.ID,
	}, nil
}
