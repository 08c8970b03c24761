package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDashboardSummaryQueryHandler serves the summary from the cache and falls
// back to computing it from the store. Cache failures are logged and never
// fail the query.
type GetDashboardSummaryQueryHandler struct {
	db                *gorm.DB
	cache             SummaryCache
	lowStockThreshold int
	logger            *slog.Logger
	now               func() time.Time
}

func NewGetDashboardSummaryQueryHandler(
	db *gorm.DB,
	cache SummaryCache,
	lowStockThreshold int,
	logger *slog.Logger,
) GetDashboardSummaryQueryHandler {
	if lowStockThreshold <= 0 {
		lowStockThreshold = product.DefaultLowStockThreshold
	}
	return GetDashboardSummaryQueryHandler{
		db:                db,
		cache:             cache,
		lowStockThreshold: lowStockThreshold,
		logger:            logger.With("component", "GetDashboardSummaryQueryHandler"),
		now:               time.Now,
	}
}

func (h GetDashboardSummaryQueryHandler) Handle(ctx context.Context, query GetDashboardSummaryQuery) (DashboardSummary, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummary{}, err
	}

	cached, err := h.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrSummaryNotCached) {
		h.logger.WarnContext(ctx, "dashboard summary cache read failed", "error", err)
	}

	return h.Refresh(ctx)
}

// Refresh recomputes the summary from the store and writes it to the cache.
func (h GetDashboardSummaryQueryHandler) Refresh(ctx context.Context) (DashboardSummary, error) {
	summary, err := h.compute(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	if err = h.cache.Set(ctx, summary); err != nil {
		h.logger.WarnContext(ctx, "dashboard summary cache write failed", "error", err)
	}
	return summary, nil
}

func (h GetDashboardSummaryQueryHandler) compute(ctx context.Context) (DashboardSummary, error) {
	var (
		products, stock, lowStock, orders, customers int64
		sales                                        decimal.Decimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COALESCE(SUM(quantity), 0)::bigint FROM product_inventory),
			(SELECT COUNT(*)
				FROM products p
				LEFT JOIN product_inventory i ON i.product_id = p.id
				WHERE COALESCE(i.quantity, 0) < ?),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> ?),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM customers)
	`, h.lowStockThreshold, order.Cancelled.String()).Row()
	if err := row.Scan(&products, &stock, &lowStock, &sales, &orders, &customers); err != nil {
		return DashboardSummary{}, err
	}

	totalSales, err := kernel.NewMoney(sales)
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		TotalProducts:  int(products),
		TotalStock:     int(stock),
		LowStockAlerts: int(lowStock),
		TotalSales:     totalSales,
		TotalOrders:    int(orders),
		TotalCustomers: int(customers),
		ComputedAt:     h.now().UTC(),
	}, nil
}
