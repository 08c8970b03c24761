// Package productrepo maps products to the products and product_inventory tables.
package productrepo

import (
	"storeadmin/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID          string          `gorm:"type:varchar(64);primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category    string          `gorm:"type:varchar(128)"`
	Image       string          `gorm:"type:text"`
	InStock     bool            `gorm:"not null"`
	Inventory   *InventoryDTO   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// InventoryDTO holds the stock level of a product. A product without an
// inventory row has a quantity of zero.
type InventoryDTO struct {
	ProductID string `gorm:"type:varchar(64);primaryKey"`
	Quantity  int    `gorm:"not null;default:0"`
}

func (InventoryDTO) TableName() string {
	return "product_inventory"
}

func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Category:    p.Category(),
		Image:       p.Image(),
		InStock:     p.Availability() == product.Active,
		Inventory: &InventoryDTO{
			ProductID: p.ID().String(),
			Quantity:  p.Quantity(),
		},
	}
}
