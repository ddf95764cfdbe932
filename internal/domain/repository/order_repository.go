// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrOrderNotFound is returned when no stored order carries the given id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository appends checkout records and answers point queries. Orders
// are immutable after creation; no update or cancel operation exists here.
type OrderRepository interface {
	// Save assigns a time-derived id, appends the order and returns the
	// stored copy.
	Save(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// FindByID retrieves a single order by id.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByCustomer filters orders by exact customerName match, in storage
	// insertion order. Display ordering is the caller's concern.
	ListByCustomer(ctx context.Context, customerName string) ([]entity.Order, error)
}
