package sim

import (
	"fmt"

	"github.com/ariefcatur/go-shop-sim.git/internal/catalog"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

// reconcile applies the cycle's deferred stock decrements, single-threaded,
// strictly after the join barrier. Sessions read stock optimistically during
// the cycle, so two of them can both pend an order against the last unit;
// orders are therefore accepted in arrival order and an order whose full
// quantity is no longer covered is rejected rather than driving stock
// negative. Rejected orders are never persisted or forwarded; each one leaves
// an error event on the audit stream.
func reconcile(store *catalog.Store, batches [][]catalog.PurchaseOrder, s *sink.Sink) (accepted []catalog.PurchaseOrder, rejected int) {
	for _, orders := range batches {
		for _, o := range orders {
			have := store.Quantity(o.ProductID)
			if have < o.Qty {
				rejected++
				s.Reject(o.UserID, fmt.Sprintf("order rejected product=%s qty=%d available=%d", o.ProductID, o.Qty, have))
				continue
			}
			store.Decrement(o.ProductID, o.Qty)
			accepted = append(accepted, o)
		}
	}
	return accepted, rejected
}
