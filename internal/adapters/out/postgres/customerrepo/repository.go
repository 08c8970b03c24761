package customerrepo

import (
	"context"

	"storeadmin/internal/core/domain/model/customer"

	"gorm.io/gorm"
)

// GormCustomerRepository writes customers with GORM. Customer reads go through
// the customer list query.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts a customer. Used to load seed data.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := FromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}
