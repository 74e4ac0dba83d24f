package admin

import (
	"context"

	"github.com/SmartLocalApps/service-finder/internal/audit"
	domain "github.com/SmartLocalApps/service-finder/internal/domain/identity"
)

type DeleteWorker struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWorker(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteWorker {
	return &DeleteWorker{repo: repo, audit: audit}
}

func (uc *DeleteWorker) Execute(ctx context.Context, workerID string) error {
	if err := uc.repo.DeleteWorkerCascade(ctx, workerID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "worker_deleted",
		Entity:   "worker",
		EntityID: workerID,
	})

	return nil
}
