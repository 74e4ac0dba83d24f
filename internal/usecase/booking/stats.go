package booking

import (
	"context"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/booking"
)

type WorkerStats struct {
	repo domain.Repository
}

func NewWorkerStats(repo domain.Repository) *WorkerStats {
	return &WorkerStats{repo: repo}
}

func (uc *WorkerStats) Execute(
	ctx context.Context,
	workerID string,
) (domain.WorkerStats, error) {
	return uc.repo.StatsForWorker(ctx, workerID)
}

type AdminStats struct {
	repo domain.Repository
}

func NewAdminStats(repo domain.Repository) *AdminStats {
	return &AdminStats{repo: repo}
}

func (uc *AdminStats) Execute(
	ctx context.Context,
) (domain.AdminStats, error) {
	return uc.repo.StatsForAdmin(ctx)
}
