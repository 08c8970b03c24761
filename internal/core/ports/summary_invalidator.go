package ports

import "context"

// SummaryInvalidator drops the cached dashboard summary so the next read
// recomputes it from the store.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context) error
}
