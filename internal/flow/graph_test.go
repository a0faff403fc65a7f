package flow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraphIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadGraphs(t *testing.T) {
	tests := []struct {
		name  string
		edges map[State][]Edge
	}{
		{
			name: "probabilities do not sum to 1",
			edges: map[State][]Edge{
				Login:       {{To: Home, Prob: 1}},
				Home:        {{To: Exit, Prob: 0.5}},
				ViewProduct: {{To: Exit, Prob: 1}},
				Cart:        {{To: Exit, Prob: 1}},
				Checkout:    {{To: Exit, Prob: 1}},
			},
		},
		{
			name: "negative probability",
			edges: map[State][]Edge{
				Login:       {{To: Home, Prob: 1}},
				Home:        {{To: Exit, Prob: 1.5}, {To: ViewProduct, Prob: -0.5}},
				ViewProduct: {{To: Exit, Prob: 1}},
				Cart:        {{To: Exit, Prob: 1}},
				Checkout:    {{To: Exit, Prob: 1}},
			},
		},
		{
			name: "state without outgoing edges",
			edges: map[State][]Edge{
				Login:       {{To: Home, Prob: 1}},
				Home:        {{To: Exit, Prob: 1}},
				ViewProduct: {{To: Exit, Prob: 1}},
				Checkout:    {{To: Exit, Prob: 1}},
			},
		},
		{
			name: "exit not terminal",
			edges: map[State][]Edge{
				Login:       {{To: Home, Prob: 1}},
				Home:        {{To: Exit, Prob: 1}},
				ViewProduct: {{To: Exit, Prob: 1}},
				Cart:        {{To: Exit, Prob: 1}},
				Checkout:    {{To: Exit, Prob: 1}},
				Exit:        {{To: Home, Prob: 1}},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, New(tc.edges).Validate())
		})
	}
}

func TestLoginAlwaysGoesHome(t *testing.T) {
	g := Default()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Equal(t, Home, g.Next(rng, Login))
	}
}

func TestExitIsTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	assert.Equal(t, Exit, Default().Next(rng, Exit))
}

func TestNextSamplesProportionally(t *testing.T) {
	g := New(map[State][]Edge{
		Login:       {{To: Home, Prob: 1}},
		Home:        {{To: ViewProduct, Prob: 0.9}, {To: Exit, Prob: 0.1}},
		ViewProduct: {{To: Exit, Prob: 1}},
		Cart:        {{To: Exit, Prob: 1}},
		Checkout:    {{To: Exit, Prob: 1}},
	})
	require.NoError(t, g.Validate())

	rng := rand.New(rand.NewSource(42))
	views := 0
	for i := 0; i < 1000; i++ {
		switch g.Next(rng, Home) {
		case ViewProduct:
			views++
		case Exit:
		default:
			t.Fatal("unexpected destination from Home")
		}
	}
	// expected 900, allow a generous band for the fixed seed
	assert.InDelta(t, 900, views, 50)
}
