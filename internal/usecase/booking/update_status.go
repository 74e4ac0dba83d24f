package booking

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/booking"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit}
}

// Execute overwrites the booking's status with whatever string the
// caller sent. There is no transition table and no closed status
// set; both sides of the marketplace drive the lifecycle manually.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID string,
	status string,
) error {

	if err := uc.repo.UpdateStatus(ctx, bookingID, status); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: bookingID,
		Metadata: map[string]string{"status": status},
	})

	return nil
}
