package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ariefcatur/go-shop-sim.git/internal/catalog"
	"github.com/ariefcatur/go-shop-sim.git/internal/flow"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

// Catalog is the read-only view a session gets of the shared store.
type Catalog interface {
	InStock() []catalog.Product
}

// Runner drives one admitted user from Login to Exit for a single cycle.
// It reads the catalog, appends to the shared sink, and returns the purchase
// orders it produced; the stock decrements for those orders are applied by
// the scheduler after the join barrier, never here.
type Runner struct {
	Graph        *flow.Graph
	Catalog      Catalog
	Sink         *sink.Sink
	Gen          *catalog.Generator
	StepDelayMax time.Duration // optional stagger between transitions
}

// Run walks the flow graph until Exit. It never fails: a session that finds
// no product in stock at View Product degrades to Exit, and a canceled ctx
// fast-forwards to Exit after the current state.
func (r *Runner) Run(ctx context.Context, rng *rand.Rand, user catalog.User) []catalog.PurchaseOrder {
	r.Sink.Audit(user.ID, "login")

	var pending []catalog.PurchaseOrder
	var cart []string // product ids in add order
	var current catalog.Product

	state := flow.Login
	for {
		switch state {
		case flow.Home:
			r.Sink.Action(user.ID, "scrolling")
		case flow.ViewProduct:
			avail := r.Catalog.InStock()
			if len(avail) == 0 {
				state = flow.Exit
				continue
			}
			current = avail[rng.Intn(len(avail))]
			r.Sink.Action(user.ID, "zoom product="+current.ID)
		case flow.Cart:
			// only reachable from View Product, so current is always set
			cart = append(cart, current.ID)
			r.Sink.Action(user.ID, "click product="+current.ID)
		case flow.Checkout:
			pending = append(pending, r.checkout(user, cart)...)
			cart = cart[:0]
		case flow.Exit:
			r.Sink.Action(user.ID, "exit")
			r.Sink.Audit(user.ID, "exit")
			return pending
		}

		if ctx.Err() != nil {
			state = flow.Exit
			continue
		}
		r.stagger(rng)
		state = r.Graph.Next(rng, state)
	}
}

// checkout aggregates the cart per distinct product (first-seen order) and
// synthesizes one purchase order, and one audit event, per product.
func (r *Runner) checkout(user catalog.User, cart []string) []catalog.PurchaseOrder {
	qty := make(map[string]int, len(cart))
	var seen []string
	for _, id := range cart {
		if qty[id] == 0 {
			seen = append(seen, id)
		}
		qty[id]++
	}

	out := make([]catalog.PurchaseOrder, 0, len(seen))
	for _, id := range seen {
		out = append(out, r.Gen.PurchaseOrder(user.ID, id, qty[id]))
		r.Sink.Audit(user.ID, fmt.Sprintf("checkout product=%s qty=%d", id, qty[id]))
	}
	return out
}

func (r *Runner) stagger(rng *rand.Rand) {
	if r.StepDelayMax > 0 {
		time.Sleep(time.Duration(rng.Int63n(int64(r.StepDelayMax))))
	}
}
