// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is returned when a product id matches neither the base
// catalog nor the seller-added collection.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository merges the immutable generated base catalog with the
// persisted seller-added collection. The base set always comes first and is
// never written back; added products live in their own id namespace.
type CatalogRepository interface {
	// List returns base catalog ++ added products, in insertion order.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID looks a product up across both sets.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Add assigns a fresh id in the added-products namespace, appends the
	// product to the persisted collection and returns the stored copy.
	Add(ctx context.Context, product *entity.Product) (*entity.Product, error)
}
