package sim

import (
	"context"

	"github.com/ariefcatur/go-shop-sim.git/internal/catalog"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

// Cycle is one scheduler iteration's delta, handed to the publisher and then
// discarded.
type Cycle struct {
	Seq         int
	NewUsers    []catalog.User
	NewProducts []catalog.Product
	Orders      []catalog.PurchaseOrder // accepted at reconciliation
	Stock       []catalog.StockEntry    // full post-reconciliation snapshot
	Audit       []sink.Event
	Report      []sink.Event
}

// Publisher persists a cycle's artifacts and forwards its report stream.
type Publisher interface {
	Publish(ctx context.Context, c *Cycle) error
}
