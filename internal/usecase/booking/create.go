package booking

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/booking"
	"github.com/SmartLocalApps/service-finder/internal/ids"
	"github.com/SmartLocalApps/service-finder/internal/models"
)

type CreateBookingInput struct {
	UserID     string
	WorkerID   string
	ServiceKey string
	Slot       string
	Price      float64
	Address    string
	Lat        float64
	Lng        float64
	Notes      string
}

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{repo: repo, audit: audit}
}

// Execute inserts the booking as-is. The slot is not checked against
// the worker's availability and the price is taken at face value;
// conflicts are resolved out-of-band between customer and worker.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (string, error) {

	b := &models.Booking{
		ID:         ids.NewBooking(),
		UserID:     in.UserID,
		WorkerID:   in.WorkerID,
		ServiceKey: in.ServiceKey,
		Slot:       in.Slot,
		Price:      in.Price,
		Status:     string(domain.InitialStatus()),
		Address:    in.Address,
		Lat:        in.Lat,
		Lng:        in.Lng,
		Notes:      in.Notes,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b.ID, nil
}
