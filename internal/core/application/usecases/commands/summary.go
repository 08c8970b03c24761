package commands

import (
	"context"
	"log/slog"

	"storeadmin/internal/core/ports"
)

// invalidateSummary drops the cached dashboard summary after a committed
// write. Failures are logged; the cache entry then expires on its own.
func invalidateSummary(ctx context.Context, summary ports.SummaryInvalidator, logger *slog.Logger) {
	if summary == nil {
		return
	}
	if err := summary.Invalidate(ctx); err != nil {
		logger.WarnContext(ctx, "failed to invalidate dashboard summary", "error", err)
	}
}
