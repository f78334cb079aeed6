package reports

import "context"

// Repo defines persistence operations for reports. Append-only: no update or
// delete path exists in this service.
type Repo interface {
	Create(ctx context.Context, report Report) error
	GetByID(ctx context.Context, id string) (Report, error)
}
