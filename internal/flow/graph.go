package flow

import (
	"fmt"
	"math"
	"math/rand"
)

type State string

const (
	Login       State = "Login"
	Home        State = "Home"
	ViewProduct State = "View Product"
	Cart        State = "Cart"
	Checkout    State = "Checkout"
	Exit        State = "Exit"
)

type Edge struct {
	To   State
	Prob float64
}

// Graph is a static weighted directed graph over the session states. Edge
// weights are configuration; per state they must sum to 1.
type Graph struct {
	edges map[State][]Edge
}

// Default returns the reference user-flow graph.
func Default() *Graph {
	return &Graph{edges: map[State][]Edge{
		Login: {{To: Home, Prob: 1}},
		Home: {
			{To: ViewProduct, Prob: 0.9},
			{To: Exit, Prob: 0.1},
		},
		ViewProduct: {
			{To: Cart, Prob: 0.3},
			{To: Home, Prob: 0.5},
			{To: Exit, Prob: 0.2},
		},
		Cart: {
			{To: Home, Prob: 0.4},
			{To: Checkout, Prob: 0.5},
			{To: Exit, Prob: 0.1},
		},
		Checkout: {
			{To: Exit, Prob: 0.9},
			{To: Home, Prob: 0.1},
		},
	}}
}

// New builds a graph from an explicit edge table. Call Validate before use.
func New(edges map[State][]Edge) *Graph {
	return &Graph{edges: edges}
}

const probTolerance = 1e-9

// Validate checks the graph invariants: Exit is terminal, every other state
// has outgoing edges whose probabilities sum to 1, and no edge is negative.
func (g *Graph) Validate() error {
	if len(g.edges[Exit]) != 0 {
		return fmt.Errorf("flow: %s must be terminal", Exit)
	}
	for _, s := range []State{Login, Home, ViewProduct, Cart, Checkout} {
		es := g.edges[s]
		if len(es) == 0 {
			return fmt.Errorf("flow: state %s has no outgoing edges", s)
		}
		sum := 0.0
		for _, e := range es {
			if e.Prob < 0 {
				return fmt.Errorf("flow: negative probability on %s -> %s", s, e.To)
			}
			sum += e.Prob
		}
		if math.Abs(sum-1) > probTolerance {
			return fmt.Errorf("flow: probabilities out of %s sum to %v, want 1", s, sum)
		}
	}
	return nil
}

// Next samples one outgoing edge of cur proportionally to its weight and
// returns the destination. Sampling from Exit returns Exit.
func (g *Graph) Next(rng *rand.Rand, cur State) State {
	es := g.edges[cur]
	if len(es) == 0 {
		return Exit
	}
	r := rng.Float64()
	acc := 0.0
	for _, e := range es {
		acc += e.Prob
		if r < acc {
			return e.To
		}
	}
	// float accumulation can land a hair under 1
	return es[len(es)-1].To
}
