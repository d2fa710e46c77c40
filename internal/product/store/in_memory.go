package store

import (
	"context"
	"sync"

	"github.com/abgdnv/monapi/internal/product/errors"
)

// inMemory implements ProductStore using an ordered slice.
// nextID only grows, so identifiers are never reused.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	nextID   int64
}

// NewInMemoryStore creates a ProductStore holding a copy of seed.
// The first assigned ID is one above the highest seeded ID.
func NewInMemoryStore(seed ...Product) ProductStore {
	s := &inMemory{
		products: make([]Product, 0, len(seed)),
		nextID:   1,
	}
	for _, p := range seed {
		s.products = append(s.products, p)
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// FindAll returns a snapshot of all products in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// FindByID scans the products for the given ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.ErrProductNotFound
}

// Create creates a new product and returns it.
func (s *inMemory) Create(ctx context.Context, name string, price float64) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:    s.nextID,
		Name:  name,
		Price: price,
	}
	s.nextID++
	s.products = append(s.products, product)

	return &product, nil
}
