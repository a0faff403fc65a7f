package sim

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/ariefcatur/go-shop-sim.git/internal/catalog"
	"github.com/ariefcatur/go-shop-sim.git/internal/flow"
	"github.com/ariefcatur/go-shop-sim.git/internal/session"
	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

// Scheduler drives the simulation loop. Each cycle it grows the catalog,
// admits a sample of users, fans out one session runner per admitted user,
// waits on the join barrier, reconciles the deferred stock decrements and
// hands the cycle delta to the publisher. Cycles never overlap.
type Scheduler struct {
	Store  *catalog.Store
	Graph  *flow.Graph
	Gen    *catalog.Generator
	Sink   *sink.Sink
	Pub    Publisher
	Growth GrowthPolicy
	Stock  StockPolicy
	Fault  FaultInjector

	MaxConcurrent int
	CycleDuration time.Duration
	StepDelayMax  time.Duration

	Status *Status    // optional
	Rand   *rand.Rand // optional; defaults to a time-seeded source
}

func (s *Scheduler) rng() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

// SeedCatalog populates the store before the first cycle.
func (s *Scheduler) SeedCatalog(users, products, stockQty int) {
	for i := 0; i < users; i++ {
		s.Store.AddUser(s.Gen.User())
	}
	for i := 0; i < products; i++ {
		s.Store.AddProduct(s.Gen.Product(), stockQty)
	}
}

// Run loops until ctx is canceled. The loop has no natural terminal state.
func (s *Scheduler) Run(ctx context.Context) {
	for seq := 1; ; seq++ {
		if ctx.Err() != nil {
			return
		}
		s.RunCycle(ctx, seq)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.CycleDuration):
		}
	}
}

// RunCycle executes exactly one cycle. Exported so tests and one-shot tools
// can step the simulation without the pacing loop.
func (s *Scheduler) RunCycle(ctx context.Context, seq int) {
	rng := s.rng()

	// 1. growth
	nUsers, nProducts := s.Growth.Users(rng), s.Growth.Products(rng)
	newUsers := make([]catalog.User, 0, nUsers)
	for i := 0; i < nUsers; i++ {
		u := s.Gen.User()
		s.Store.AddUser(u)
		newUsers = append(newUsers, u)
	}
	newProducts := make([]catalog.Product, 0, nProducts)
	for i := 0; i < nProducts; i++ {
		p := s.Gen.Product()
		s.Store.AddProduct(p, s.Stock.Quantity(rng))
		newProducts = append(newProducts, p)
	}

	// 2. admission
	admitted := s.Store.SampleUsers(rng, s.MaxConcurrent)

	// 3. concurrent execution; results are indexed so reconciliation sees a
	// stable arrival order regardless of goroutine interleaving
	pending := make([][]catalog.PurchaseOrder, len(admitted))
	var wg sync.WaitGroup
	for i, u := range admitted {
		runner := &session.Runner{
			Graph:        s.Graph,
			Catalog:      s.Store,
			Sink:         s.Sink,
			Gen:          s.Gen,
			StepDelayMax: s.StepDelayMax,
		}
		childRng := rand.New(rand.NewSource(rng.Int63()))
		wg.Add(1)
		go func(i int, u catalog.User) {
			defer wg.Done()
			pending[i] = runner.Run(ctx, childRng, u)
		}(i, u)
	}
	wg.Wait()

	if ctx.Err() != nil {
		// shutting down: skip reconciliation and drop the partial cycle,
		// leaving stock as the last published snapshot
		audit, report := s.Sink.Drain()
		log.Printf("cycle %d: canceled, dropping %d audit / %d report events", seq, len(audit), len(report))
		return
	}

	// 4. reconciliation, single-writer after the barrier
	accepted, rejected := reconcile(s.Store, pending, s.Sink)

	// 5. fault injection
	s.Fault.Inject(seq, rng, s.Sink)

	// 6. publication
	audit, report := s.Sink.Drain()
	c := &Cycle{
		Seq:         seq,
		NewUsers:    newUsers,
		NewProducts: newProducts,
		Orders:      accepted,
		Stock:       s.Store.StockSnapshot(),
		Audit:       audit,
		Report:      report,
	}
	if err := s.Pub.Publish(ctx, c); err != nil {
		// fatal for the cycle only; buffers are dropped, the loop continues
		log.Printf("cycle %d: publish failed, dropping buffers: %v", seq, err)
	}

	if s.Status != nil {
		s.Status.set(StatusSnapshot{
			Cycle:          seq,
			Users:          s.Store.UserCount(),
			Products:       s.Store.ProductCount(),
			AcceptedOrders: len(accepted),
			RejectedOrders: rejected,
			AuditEvents:    len(audit),
			ReportEvents:   len(report),
			PublishedAt:    time.Now().UTC(),
		})
	}
}
