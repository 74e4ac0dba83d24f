package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SmartLocalApps/service-finder/internal/domain/worker"
)

type stubWorkerRepo struct {
	profiles []domain.Profile
}

func (s *stubWorkerRepo) ListVerified(context.Context) ([]domain.Profile, error) {
	return s.profiles, nil
}

func (s *stubWorkerRepo) GetProfile(_ context.Context, id string) (*domain.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return &s.profiles[i], nil
		}
	}
	return nil, nil
}

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: "worker_ac", Service: "ac_service", Lat: 12.9716, Lng: 77.5946},
		{ID: "worker_plumber", Service: "plumber"},
	}
}

func TestFindWorkersServiceFilter(t *testing.T) {
	uc := NewFindWorkers(&stubWorkerRepo{profiles: testProfiles()})
	ctx := context.Background()

	tests := []struct {
		filter string
		want   []string
	}{
		{"ac_service", []string{"worker_ac"}},
		{"service", []string{"worker_ac"}},
		{"plumber", []string{"worker_plumber"}},
		{"all", []string{"worker_ac", "worker_plumber"}},
		{"", []string{"worker_ac", "worker_plumber"}},
		{"gardener", []string{}},
	}

	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			matches, err := uc.Execute(ctx, FindWorkersInput{Service: tt.filter})
			require.NoError(t, err)

			got := make([]string, 0, len(matches))
			for _, m := range matches {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindWorkersDistanceAnnotation(t *testing.T) {
	uc := NewFindWorkers(&stubWorkerRepo{profiles: testProfiles()})
	ctx := context.Background()

	// Origin a few kilometers north of the first worker.
	matches, err := uc.Execute(ctx, FindWorkersInput{Lat: 13.0827, Lng: 77.5946})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Greater(t, matches[0].Distance, 0.0)
	assert.InDelta(t, 12.4, matches[0].Distance, 0.5)

	// The second worker has no stored coordinate, so no distance.
	assert.Zero(t, matches[1].Distance)
}

func TestFindWorkersWithoutOrigin(t *testing.T) {
	uc := NewFindWorkers(&stubWorkerRepo{profiles: testProfiles()})

	matches, err := uc.Execute(context.Background(), FindWorkersInput{})
	require.NoError(t, err)
	for _, m := range matches {
		assert.Zero(t, m.Distance)
	}
}
