package catalog

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Generator synthesizes fully populated catalog records. The engine treats it
// as an opaque factory; everything except ids and timestamps comes from
// gofakeit.
type Generator struct {
	f *gofakeit.Faker
}

// NewGenerator with seed 0 uses a random source; pass a fixed seed in tests.
func NewGenerator(seed uint64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

func (g *Generator) User() User {
	addr := g.f.Address()
	now := time.Now().UTC()
	return User{
		ID:           uuid.NewString(),
		Name:         g.f.Name(),
		Email:        g.f.Email(),
		Address:      fmt.Sprintf("%s, %s, %s, %s, %s", addr.Street, addr.City, addr.State, addr.Zip, addr.Country),
		RegisteredAt: now,
		BirthDate:    g.f.DateRange(now.AddDate(-100, 0, 0), now.AddDate(-18, 0, 0)),
	}
}

func (g *Generator) Product() Product {
	return Product{
		ID:          uuid.NewString(),
		Name:        g.f.ProductName(),
		Image:       g.f.URL(),
		Description: g.f.Sentence(8),
		PriceCents:  g.f.Number(100, 100_000),
	}
}

func (g *Generator) Stock(productID string, qty int) StockEntry {
	return StockEntry{ProductID: productID, Quantity: qty}
}

func (g *Generator) PurchaseOrder(userID, productID string, qty int) PurchaseOrder {
	now := time.Now().UTC()
	return PurchaseOrder{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProductID:   productID,
		Qty:         qty,
		CreatedAt:   now,
		PaidAt:      now,
		DeliveredAt: now,
	}
}
