package catalog

import "math/rand"

// Store holds the mutable catalog state: append-only user/product pools and
// the stock ledger. It is owned by the cycle scheduler. Sessions only read it,
// and all writes happen outside the concurrent phase (growth before fan-out,
// stock decrements after the join barrier), so no locking is needed.
type Store struct {
	users    []User
	products []Product
	stock    map[string]int
}

func NewStore() *Store {
	return &Store{stock: make(map[string]int)}
}

func (s *Store) AddUser(u User) {
	s.users = append(s.users, u)
}

// AddProduct registers the product and its initial stock entry.
func (s *Store) AddProduct(p Product, qty int) {
	s.products = append(s.products, p)
	s.stock[p.ID] = qty
}

func (s *Store) UserCount() int    { return len(s.users) }
func (s *Store) ProductCount() int { return len(s.products) }

func (s *Store) Quantity(productID string) int { return s.stock[productID] }

// InStock returns the products with positive stock, observed at call time.
func (s *Store) InStock() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if s.stock[p.ID] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Decrement reduces stock for one product. Reconciliation only; callers must
// have checked availability, quantities never go below zero.
func (s *Store) Decrement(productID string, qty int) {
	if left := s.stock[productID] - qty; left >= 0 {
		s.stock[productID] = left
	}
}

// StockSnapshot returns the full ledger in product insertion order, for the
// per-cycle overwrite of the stock table.
func (s *Store) StockSnapshot() []StockEntry {
	out := make([]StockEntry, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, StockEntry{ProductID: p.ID, Quantity: s.stock[p.ID]})
	}
	return out
}

// SampleUsers picks up to n distinct users uniformly without replacement.
// When the population is at or below n, every user is returned.
func (s *Store) SampleUsers(rng *rand.Rand, n int) []User {
	if len(s.users) <= n {
		out := make([]User, len(s.users))
		copy(out, s.users)
		return out
	}
	out := make([]User, 0, n)
	for _, i := range rng.Perm(len(s.users))[:n] {
		out = append(out, s.users[i])
	}
	return out
}
