package catalog

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string) Product {
	return Product{ID: id, Name: "p-" + id, PriceCents: 100}
}

func TestInStockFiltersEmptyShelves(t *testing.T) {
	s := NewStore()
	s.AddProduct(testProduct("a"), 3)
	s.AddProduct(testProduct("b"), 0)
	s.AddProduct(testProduct("c"), 1)

	got := s.InStock()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestDecrementNeverGoesNegative(t *testing.T) {
	s := NewStore()
	s.AddProduct(testProduct("a"), 2)

	s.Decrement("a", 2)
	assert.Equal(t, 0, s.Quantity("a"))

	// an overdraw is ignored, not applied
	s.Decrement("a", 1)
	assert.Equal(t, 0, s.Quantity("a"))
}

func TestStockSnapshotKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddProduct(testProduct("b"), 5)
	s.AddProduct(testProduct("a"), 7)

	snap := s.StockSnapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, StockEntry{ProductID: "b", Quantity: 5}, snap[0])
	assert.Equal(t, StockEntry{ProductID: "a", Quantity: 7}, snap[1])
}

func TestSampleUsersWholePopulationUnderCap(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"u1", "u2", "u3"} {
		s.AddUser(User{ID: id})
	}

	got := s.SampleUsers(rand.New(rand.NewSource(1)), 10)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, u := range got {
		assert.False(t, seen[u.ID], "user sampled twice")
		seen[u.ID] = true
	}
}

func TestSampleUsersWithoutReplacement(t *testing.T) {
	s := NewStore()
	for i := 0; i < 100; i++ {
		s.AddUser(User{ID: fmt.Sprintf("u%d", i)})
	}

	got := s.SampleUsers(rand.New(rand.NewSource(2)), 40)
	require.Len(t, got, 40)
	seen := map[string]bool{}
	for _, u := range got {
		assert.False(t, seen[u.ID], "user sampled twice")
		seen[u.ID] = true
	}
}
