// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CartUsecase manages per-session carts. Carts are view state: held in
// memory, keyed by session fingerprint, gone on restart. Quantities never
// drop below one except by removing the item outright.
type CartUsecase interface {
	// Get returns the cart for a session, possibly empty.
	Get(ctx context.Context, fingerprint string) (entity.Cart, error)

	// Add puts quantity units of a product into the cart, merging with an
	// existing line for the same product.
	Add(ctx context.Context, fingerprint, productID string, quantity int) (entity.Cart, error)

	// Adjust changes a line's quantity by delta, clamping at one.
	Adjust(ctx context.Context, fingerprint, productID string, delta int) (entity.Cart, error)

	// Remove drops a product's line from the cart.
	Remove(ctx context.Context, fingerprint, productID string) (entity.Cart, error)

	// Clear empties the cart, typically after checkout.
	Clear(ctx context.Context, fingerprint string) error
}
