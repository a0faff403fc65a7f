package sim

import "math/rand"

// GrowthPolicy decides how many new users and products are created per cycle.
type GrowthPolicy interface {
	Users(rng *rand.Rand) int
	Products(rng *rand.Rand) int
}

// FixedGrowth creates a constant number of entities every cycle.
type FixedGrowth struct {
	UsersPerCycle    int
	ProductsPerCycle int
}

func (g FixedGrowth) Users(*rand.Rand) int    { return g.UsersPerCycle }
func (g FixedGrowth) Products(*rand.Rand) int { return g.ProductsPerCycle }

// BernoulliGrowth creates at most one entity per cycle, with the given
// probabilities.
type BernoulliGrowth struct {
	PUser    float64
	PProduct float64
}

// DefaultBernoulli matches the reference traffic shape: a new user on 70% of
// cycles, a new product on 80%.
func DefaultBernoulli() BernoulliGrowth {
	return BernoulliGrowth{PUser: 0.7, PProduct: 0.8}
}

func (g BernoulliGrowth) Users(rng *rand.Rand) int {
	if rng.Float64() < g.PUser {
		return 1
	}
	return 0
}

func (g BernoulliGrowth) Products(rng *rand.Rand) int {
	if rng.Float64() < g.PProduct {
		return 1
	}
	return 0
}

// StockPolicy picks the initial stock quantity for a newly created product.
type StockPolicy struct {
	Min, Max int
}

func (p StockPolicy) Quantity(rng *rand.Rand) int {
	if p.Max <= p.Min {
		return p.Min
	}
	return p.Min + rng.Intn(p.Max-p.Min+1)
}
