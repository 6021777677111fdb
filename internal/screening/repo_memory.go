package screening

import (
	"context"
	"sync"
)

// MemoryRepo stores screening results in memory and is safe for concurrent
// use. It is the default store when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Result
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Result)}
}

// Create stores the result.
func (r *MemoryRepo) Create(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.byID[result.ID] = result
	return nil
}

// GetByID returns a screening result by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.byID[id]
	if !ok {
		return Result{}, ErrNotFound
	}
	return result, nil
}

// ListRecent returns results newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit, offset int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := make([]Result, 0, limit)
	for i := len(r.order) - 1 - offset; i >= 0 && len(results) < limit; i-- {
		results = append(results, r.byID[r.order[i]])
	}
	return results, nil
}
