package queries

import (
	"context"
	"errors"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

// ErrSummaryNotCached is returned by SummaryCache.Get on a miss.
var ErrSummaryNotCached = errors.New("dashboard summary is not cached")

// GetDashboardSummaryQuery reads the headline numbers of the dashboard.
type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// DashboardSummary is the card row of the dashboard. TotalSales adds up order
// totals except cancelled orders.
type DashboardSummary struct {
	TotalProducts  int
	TotalStock     int
	LowStockAlerts int
	TotalSales     kernel.Money
	TotalOrders    int
	TotalCustomers int
	ComputedAt     time.Time
}

// SummaryCache stores the last computed summary.
type SummaryCache interface {
	// Get returns ErrSummaryNotCached on a miss.
	Get(ctx context.Context) (DashboardSummary, error)
	Set(ctx context.Context, summary DashboardSummary) error
}
