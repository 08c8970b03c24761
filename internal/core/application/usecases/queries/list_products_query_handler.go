package queries

import (
	"context"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler reads products joined with their inventory.
// Products without an inventory row report a quantity of zero.
type ListProductsQueryHandler struct {
	db                *gorm.DB
	lowStockThreshold int
}

func NewListProductsQueryHandler(db *gorm.DB, lowStockThreshold int) ListProductsQueryHandler {
	if lowStockThreshold <= 0 {
		lowStockThreshold = product.DefaultLowStockThreshold
	}
	return ListProductsQueryHandler{db: db, lowStockThreshold: lowStockThreshold}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Table("products").Count(&total).Error; err != nil {
		return ListProductsQueryResponse{}, err
	}

	stmt := h.db.WithContext(ctx).
		Table("products p").
		Select(`
			p.id,
			p.name,
			p.description,
			p.price,
			COALESCE(i.quantity, 0),
			p.category,
			p.image,
			p.in_stock`).
		Joins("LEFT JOIN product_inventory i ON i.product_id = p.id").
		Order("p.id")
	if term := query.Search(); term != "" {
		stmt = stmt.Where("p.name ILIKE ? OR p.category ILIKE ?", containsPattern(term), containsPattern(term))
	}

	rows, err := stmt.Rows()
	if err != nil {
		return ListProductsQueryResponse{}, err
	}
	defer rows.Close()

	resp := ListProductsQueryResponse{
		Products: make([]ProductRow, 0),
		Total:    int(total),
	}

	for rows.Next() {
		var (
			id, name, description, category, image string
			price                                  decimal.Decimal
			quantity                               int
			inStock                                bool
		)
		if err = rows.Scan(&id, &name, &description, &price, &quantity, &category, &image, &inStock); err != nil {
			return ListProductsQueryResponse{}, err
		}

		productID, idErr := kernel.NewID(id)
		if idErr != nil {
			return ListProductsQueryResponse{}, idErr
		}
		unitPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return ListProductsQueryResponse{}, priceErr
		}
		p, restoreErr := product.RestoreProduct(productID, name, unitPrice, quantity,
			product.AvailabilityFromInStock(inStock), product.Attributes{
				Description: description,
				Category:    category,
				Image:       image,
			})
		if restoreErr != nil {
			return ListProductsQueryResponse{}, restoreErr
		}

		resp.Products = append(resp.Products, ProductRow{
			ID:           p.ID(),
			Name:         p.Name(),
			Description:  p.Description(),
			Price:        p.Price(),
			Quantity:     p.Quantity(),
			Category:     p.Category(),
			Image:        p.Image(),
			Availability: p.Availability(),
			LowStock:     p.IsLowStock(h.lowStockThreshold),
		})
	}

	if err = rows.Err(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	resp.Shown = len(resp.Products)
	return resp, nil
}
