package postgres

import (
	"context"
	"fmt"

	"storeadmin/internal/adapters/out/postgres/customerrepo"
	"storeadmin/internal/adapters/out/postgres/orderrepo"
	"storeadmin/internal/adapters/out/postgres/productrepo"
	"storeadmin/internal/core/domain/model/customer"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the dashboard reads.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.InventoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
	)
}

// Dataset is a batch of rows to load with Seed.
type Dataset struct {
	Products  []*product.Product
	Orders    []*order.Order
	Customers []*customer.Customer
}

// Seed inserts ds in one transaction. It does nothing when the orders table
// already has rows, so running it on every start is safe.
func Seed(ctx context.Context, db *gorm.DB, ds Dataset) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&orderrepo.OrderDTO{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := productrepo.NewGormProductRepository(tx)
		for _, p := range ds.Products {
			if err := products.Add(ctx, p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID(), err)
			}
		}

		orders := orderrepo.NewGormOrderRepository(tx)
		for _, o := range ds.Orders {
			if err := orders.Add(ctx, o); err != nil {
				return fmt.Errorf("seed order %s: %w", o.ID(), err)
			}
		}

		customers := customerrepo.NewGormCustomerRepository(tx)
		for _, c := range ds.Customers {
			if err := customers.Add(ctx, c); err != nil {
				return fmt.Errorf("seed customer %s: %w", c.ID(), err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
