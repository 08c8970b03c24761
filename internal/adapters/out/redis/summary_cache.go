// Package redis caches the dashboard summary in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storeadmin/internal/core/application/usecases/queries"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const DefaultSummaryKey = "storeadmin:dashboard:summary"

var (
	_ queries.SummaryCache     = (*SummaryCache)(nil)
	_ ports.SummaryInvalidator = (*SummaryCache)(nil)
)

type summaryDTO struct {
	TotalProducts  int       `json:"totalProducts"`
	TotalStock     int       `json:"totalStock"`
	LowStockAlerts int       `json:"lowStockAlerts"`
	TotalSales     string    `json:"totalSales"`
	TotalOrders    int       `json:"totalOrders"`
	TotalCustomers int       `json:"totalCustomers"`
	ComputedAt     time.Time `json:"computedAt"`
}

// SummaryCache keeps one summary under key for ttl.
type SummaryCache struct {
	client goredis.Cmdable
	key    string
	ttl    time.Duration
}

func NewSummaryCache(client goredis.Cmdable, key string, ttl time.Duration) *SummaryCache {
	if key == "" {
		key = DefaultSummaryKey
	}
	return &SummaryCache{client: client, key: key, ttl: ttl}
}

func (c *SummaryCache) Get(ctx context.Context) (queries.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return queries.DashboardSummary{}, queries.ErrSummaryNotCached
	}
	if err != nil {
		return queries.DashboardSummary{}, err
	}

	var dto summaryDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return queries.DashboardSummary{}, fmt.Errorf("decode cached summary: %w", err)
	}

	amount, err := decimal.NewFromString(dto.TotalSales)
	if err != nil {
		return queries.DashboardSummary{}, fmt.Errorf("decode cached summary: %w", err)
	}
	sales, err := kernel.NewMoney(amount)
	if err != nil {
		return queries.DashboardSummary{}, err
	}

	return queries.DashboardSummary{
		TotalProducts:  dto.TotalProducts,
		TotalStock:     dto.TotalStock,
		LowStockAlerts: dto.LowStockAlerts,
		TotalSales:     sales,
		TotalOrders:    dto.TotalOrders,
		TotalCustomers: dto.TotalCustomers,
		ComputedAt:     dto.ComputedAt,
	}, nil
}

func (c *SummaryCache) Set(ctx context.Context, summary queries.DashboardSummary) error {
	raw, err := json.Marshal(summaryDTO{
		TotalProducts:  summary.TotalProducts,
		TotalStock:     summary.TotalStock,
		LowStockAlerts: summary.LowStockAlerts,
		TotalSales:     summary.TotalSales.String(),
		TotalOrders:    summary.TotalOrders,
		TotalCustomers: summary.TotalCustomers,
		ComputedAt:     summary.ComputedAt,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}

// Invalidate deletes the cached summary. Deleting a missing key is not an error.
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
