package queries

import (
	"context"
	"time"

	"storeadmin/internal/core/domain/model/customer"
	"storeadmin/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle returns matching customers ordered by registration date.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Table("customers").Count(&total).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	stmt := h.db.WithContext(ctx).
		Table("customers").
		Select("id, name, email, registered_at, total_spending, status").
		Order("registered_at, id")
	if term := query.Search(); term != "" {
		stmt = stmt.Where("name ILIKE ? OR email ILIKE ?", containsPattern(term), containsPattern(term))
	}
	if status := query.Status(); status != "" {
		stmt = stmt.Where("status = ?", string(status))
	}

	rows, err := stmt.Rows()
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}
	defer rows.Close()

	resp := ListCustomersQueryResponse{
		Customers: make([]CustomerRow, 0),
		Total:     int(total),
	}

	for rows.Next() {
		var (
			id, name, email, status string
			registeredAt            time.Time
			spending                decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &email, &registeredAt, &spending, &status); err != nil {
			return ListCustomersQueryResponse{}, err
		}

		c, mapErr := customerFromRow(id, name, email, registeredAt, spending, status)
		if mapErr != nil {
			return ListCustomersQueryResponse{}, mapErr
		}

		resp.Customers = append(resp.Customers, CustomerRow{
			ID:            c.ID(),
			Name:          c.Name(),
			Initials:      c.Initials(),
			Email:         c.Email(),
			RegisteredAt:  c.RegisteredAt(),
			TotalSpending: c.TotalSpending(),
			Status:        c.Status(),
		})
	}

	if err = rows.Err(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	resp.Shown = len(resp.Customers)
	return resp, nil
}

func customerFromRow(id, name, email string, registeredAt time.Time, spending decimal.Decimal, status string) (*customer.Customer, error) {
	customerID, err := kernel.NewID(id)
	if err != nil {
		return nil, err
	}
	money, err := kernel.NewMoney(spending)
	if err != nil {
		return nil, err
	}
	parsed, err := customer.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(customerID, name, email, registeredAt, money, parsed)
}
