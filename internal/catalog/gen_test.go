package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorProducesUniqueIDs(t *testing.T) {
	g := NewGenerator(1)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		u := g.User()
		p := g.Product()
		assert.False(t, seen[u.ID] || seen[p.ID], "id reused")
		seen[u.ID], seen[p.ID] = true, true
	}
}

func TestGeneratorPopulatesRecords(t *testing.T) {
	g := NewGenerator(1)

	u := g.User()
	assert.NotEmpty(t, u.Name)
	assert.NotEmpty(t, u.Email)
	assert.NotEmpty(t, u.Address)
	assert.False(t, u.RegisteredAt.IsZero())
	assert.True(t, u.BirthDate.Before(u.RegisteredAt))

	p := g.Product()
	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Image)
	assert.NotEmpty(t, p.Description)
	assert.Greater(t, p.PriceCents, 0)
}

func TestGeneratorStockAndOrder(t *testing.T) {
	g := NewGenerator(1)

	st := g.Stock("prod-1", 42)
	assert.Equal(t, StockEntry{ProductID: "prod-1", Quantity: 42}, st)

	o := g.PurchaseOrder("user-1", "prod-1", 3)
	require.NotEmpty(t, o.ID)
	assert.Equal(t, "user-1", o.UserID)
	assert.Equal(t, "prod-1", o.ProductID)
	assert.Equal(t, 3, o.Qty)
	assert.False(t, o.CreatedAt.IsZero())
}
