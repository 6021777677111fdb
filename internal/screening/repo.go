package screening

import "context"

// Repo defines persistence operations for completed screenings.
type Repo interface {
	Create(ctx context.Context, result Result) error
	GetByID(ctx context.Context, id string) (Result, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Result, error)
}
