package worker

import "context"

// Profile is a worker row joined with its owner's contact fields,
// the shape every worker-facing endpoint works with.
type Profile struct {
	ID           string
	UserID       string
	Service      string
	Cost         float64
	Lat          float64
	Lng          float64
	Bio          string
	Verified     bool
	Gender       string
	Experience   int
	Rating       float64
	TotalReviews int
	Slots        string

	Name  string
	Phone string
	Email string
}

type Repository interface {
	// ListVerified returns all verified worker profiles in storage
	// order; service filtering happens in the use case.
	ListVerified(ctx context.Context) ([]Profile, error)

	// GetProfile returns a single profile regardless of its
	// verified flag, or nil when the worker does not exist.
	GetProfile(ctx context.Context, workerID string) (*Profile, error)
}
