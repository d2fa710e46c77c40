// Package store provides an interface for product storage operations.
package store

import "context"

// Product represents a product entity in the store.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// ProductStore is an interface for product storage operations.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Create assigns the next identifier to a new product and appends it.
	Create(ctx context.Context, name string, price float64) (*Product, error)
}
