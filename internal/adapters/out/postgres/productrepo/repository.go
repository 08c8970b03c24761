package productrepo

import (
	"context"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/product"
	"storeadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add inserts a product and its inventory row.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := FromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes the inventory row first, then the product. Run it inside a
// unit of work so both go or neither does.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", id.String()).Delete(&InventoryDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.String()).Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", id)
	}
	return nil
}
