package matching

import (
	"context"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/worker"
	"github.com/SmartLocalApps/service-finder/internal/geo"
)

type FindWorkersInput struct {
	// Service filter; empty or "all" disables filtering.
	Service string

	// Customer origin. Zero means "no origin": results then carry
	// distance 0 instead of a computed value.
	Lat float64
	Lng float64
}

// Match is a verified worker profile annotated with the distance
// from the customer's origin, rounded to one decimal.
type Match struct {
	domain.Profile
	Distance float64
}

type FindWorkers struct {
	repo domain.Repository
}

func NewFindWorkers(repo domain.Repository) *FindWorkers {
	return &FindWorkers{repo: repo}
}

func (uc *FindWorkers) Execute(
	ctx context.Context,
	in FindWorkersInput,
) ([]Match, error) {

	profiles, err := uc.repo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(profiles))
	for _, p := range profiles {
		if domain.HasFilter(in.Service) && !domain.MatchesService(p.Service, in.Service) {
			continue
		}

		matches = append(matches, Match{
			Profile:  p,
			Distance: geo.RoundKm(geo.Distance(in.Lat, in.Lng, p.Lat, p.Lng)),
		})
	}

	return matches, nil
}
