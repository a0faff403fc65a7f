package catalog

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Address      string
	RegisteredAt time.Time
	BirthDate    time.Time
}

type Product struct {
	ID          string
	Name        string
	Image       string
	Description string
	PriceCents  int
}

type StockEntry struct {
	ProductID string
	Quantity  int
}

type PurchaseOrder struct {
	ID          string
	UserID      string
	ProductID   string
	Qty         int
	CreatedAt   time.Time
	PaidAt      time.Time
	DeliveredAt time.Time
}
