// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Status is stored as its wire code so
// the table stays readable from other tools.
type OrderDTO struct {
	ID       string          `gorm:"type:varchar(64);primaryKey"`
	Customer string          `gorm:"type:varchar(255);not null"`
	PlacedAt time.Time       `gorm:"not null;index"`
	Total    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status   string          `gorm:"type:varchar(16);not null;index"`
	Version  int64           `gorm:"not null;default:0"`
	Items    []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is a row of order_items. Position keeps the insertion order of the
// items within their order.
type ItemDTO struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	OrderID     string          `gorm:"type:varchar(64);not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   string          `gorm:"type:varchar(64);not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// FromDomain converts an order aggregate to its table representation.
func FromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtoItems := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		dtoItems = append(dtoItems, ItemDTO{
			OrderID:     o.ID().String(),
			Position:    i,
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:       o.ID().String(),
		Customer: o.Customer(),
		PlacedAt: o.PlacedAt(),
		Total:    o.Total().Decimal(),
		Status:   o.Status().String(),
		Version:  o.Version(),
		Items:    dtoItems,
	}
}

// ToDomain rebuilds the aggregate through order.RestoreOrder, so a row with an
// unknown status, a bad total or no items is rejected here.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, dto.PlacedAt, total, status, items, dto.Version)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.ProductName, dto.Quantity, price)
}
