package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// Add inserts a new order with its items. Orders are owned by the store; this
// is used to load seed data.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll loads every order, oldest first. The first row that fails validation
// aborts the load.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).Order("placed_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := ToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", dto.ID, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus sets status and increments version in a single statement that
// only matches the expected version.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.ID,
	status order.Status,
	expectedVersion int64,
) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", id.String(), expectedVersion).
		Updates(map[string]any{
			"status":  status.String(),
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	return errs.NewVersionIsInvalidErrorWithCause(
		"version",
		fmt.Errorf("order %s is no longer at version %d", id, expectedVersion),
	)
}
