// Package customerrepo maps customers to the customers table.
package customerrepo

import (
	"time"

	"storeadmin/internal/core/domain/model/customer"

	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	RegisteredAt  time.Time       `gorm:"not null"`
	TotalSpending decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(16);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func FromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            c.ID().String(),
		Name:          c.Name(),
		Email:         c.Email(),
		RegisteredAt:  c.RegisteredAt(),
		TotalSpending: c.TotalSpending().Decimal(),
		Status:        string(c.Status()),
	}
}
