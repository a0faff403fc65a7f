package sim

import (
	"fmt"
	"math/rand"

	"github.com/ariefcatur/go-shop-sim.git/internal/sink"
)

// FaultInjector is invoked once per cycle, after reconciliation, to feed the
// downstream pipeline synthetic errors unrelated to the simulated business.
type FaultInjector interface {
	Inject(cycle int, rng *rand.Rand, s *sink.Sink)
}

// NoFault injects nothing.
type NoFault struct{}

func (NoFault) Inject(int, *rand.Rand, *sink.Sink) {}

// PeriodicFault emits one synthetic error every Every cycles.
type PeriodicFault struct {
	Every int
}

func (f PeriodicFault) Inject(cycle int, rng *rand.Rand, s *sink.Sink) {
	if f.Every <= 0 || cycle%f.Every != 0 {
		return
	}
	codes := []string{"TIMEOUT", "CONN_RESET", "INTERNAL"}
	s.Error("simulation", fmt.Sprintf("synthetic fault code=%s cycle=%d", codes[rng.Intn(len(codes))], cycle))
}
