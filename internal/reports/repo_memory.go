package reports

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	reports map[string]Report
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reports: make(map[string]Report)}
}

// Create stores a report keyed by its ID.
func (r *MemoryRepo) Create(_ context.Context, report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = report
	return nil
}

// GetByID returns a stored report or ErrNotFound.
func (r *MemoryRepo) GetByID(_ context.Context, id string) (Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// Len reports the number of stored reports, for tests.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}
