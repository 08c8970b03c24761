// Package seed holds the demo catalogue the dashboard ships with. It feeds the
// -seed start-up flag and doubles as a fixture for tests.
package seed

import (
	"time"

	"storeadmin/internal/core/domain/model/customer"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/model/product"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(v float64) kernel.Money {
	return kernel.MustNewMoneyFromFloat(v)
}

func mustItem(productID, name string, quantity int, price float64) order.Item {
	item, err := order.NewItem(kernel.MustNewID(productID), name, quantity, money(price))
	if err != nil {
		panic(err)
	}
	return item
}

func mustOrder(id, customerName string, placedAt time.Time, total float64, status order.Status, items ...order.Item) *order.Order {
	o, err := order.RestoreOrder(kernel.MustNewID(id), customerName, placedAt, money(total), status, items, 0)
	if err != nil {
		panic(err)
	}
	return o
}

// Orders returns four orders, one per non-cancelled status:
// delivered, processing, shipped, pending.
func Orders() []*order.Order {
	return []*order.Order{
		mustOrder("ORD-2023-001", "John Smith", date(2025, time.April, 5), 259.97, order.Delivered,
			mustItem("1", "Premium Bluetooth Headphones", 1, 199.99),
			mustItem("4", "Organic Cotton T-Shirt", 2, 29.99),
		),
		mustOrder("ORD-2023-002", "Emily Johnson", date(2025, time.April, 6), 89.99, order.Processing,
			mustItem("5", "Professional Chef Knife", 1, 89.99),
		),
		mustOrder("ORD-2023-003", "Michael Davis", date(2025, time.April, 7), 329.98, order.Shipped,
			mustItem("2", "Ergonomic Office Chair", 1, 259.99),
			mustItem("6", "Wireless Gaming Mouse", 1, 69.99),
		),
		mustOrder("ORD-2023-004", "Sarah Wilson", date(2025, time.April, 8), 149.99, order.Pending,
			mustItem("3", "Smart Watch Pro", 1, 149.99),
		),
	}
}

func mustProduct(id, name string, price float64, quantity int, inStock bool, attrs product.Attributes) *product.Product {
	p, err := product.RestoreProduct(kernel.MustNewID(id), name, money(price), quantity, product.AvailabilityFromInStock(inStock), attrs)
	if err != nil {
		panic(err)
	}
	return p
}

// Products returns six catalogue entries. Smart Watch Pro (8) and Wireless
// Gaming Mouse (5) sit below the default low-stock threshold.
func Products() []*product.Product {
	return []*product.Product{
		mustProduct("1", "Premium Bluetooth Headphones", 199.99, 45, true, product.Attributes{
			Description: "Noise-cancelling over-ear headphones with premium sound quality",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		}),
		mustProduct("2", "Ergonomic Office Chair", 259.99, 28, true, product.Attributes{
			Description: "Adjustable ergonomic chair with lumbar support",
			Category:    "Furniture",
			Image:       "https://images.unsplash.com/photo-1570831739435-6601aa3fa4fb",
		}),
		mustProduct("3", "Smart Watch Pro", 149.99, 8, true, product.Attributes{
			Description: "Fitness tracker with heart rate monitoring and GPS",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a",
		}),
		mustProduct("4", "Organic Cotton T-Shirt", 29.99, 87, true, product.Attributes{
			Description: "Sustainable clothing made from 100% organic cotton",
			Category:    "Apparel",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
		}),
		mustProduct("5", "Professional Chef Knife", 89.99, 12, false, product.Attributes{
			Description: "High-carbon stainless steel chef knife",
			Category:    "Kitchen",
			Image:       "https://images.unsplash.com/photo-1593618468786-2d5c334e95fb",
		}),
		mustProduct("6", "Wireless Gaming Mouse", 69.99, 5, true, product.Attributes{
			Description: "High-precision gaming mouse with programmable buttons",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7",
		}),
	}
}

func mustCustomer(id, name, email string, registeredAt time.Time, spending float64, status customer.Status) *customer.Customer {
	c, err := customer.RestoreCustomer(kernel.MustNewID(id), name, email, registeredAt, money(spending), status)
	if err != nil {
		panic(err)
	}
	return c
}

// Customers returns five customers, one of them banned.
func Customers() []*customer.Customer {
	return []*customer.Customer{
		mustCustomer("CUST-001", "John Smith", "john.smith@example.com", date(2025, time.January, 15), 789.95, customer.Active),
		mustCustomer("CUST-002", "Emily Johnson", "emily.johnson@example.com", date(2025, time.February, 3), 432.50, customer.Active),
		mustCustomer("CUST-003", "Michael Davis", "michael.davis@example.com", date(2025, time.March, 12), 1245.75, customer.Active),
		mustCustomer("CUST-004", "Sarah Wilson", "sarah.wilson@example.com", date(2025, time.March, 28), 149.99, customer.Active),
		mustCustomer("CUST-005", "Robert Brown", "robert.brown@example.com", date(2025, time.February, 18), 0, customer.Banned),
	}
}
