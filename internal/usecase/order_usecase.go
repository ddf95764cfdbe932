// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CheckoutInput finalizes the current session's cart into an order.
// TotalAmount is the caller's figure (it may include shipping or vouchers the
// core knows nothing about); when zero the cart subtotal is used. It is not
// re-validated against the order lines.
type CheckoutInput struct {
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TotalAmount   float64 `json:"totalAmount" validate:"omitempty,gte=0"`
}

// CheckoutOutput returns the persisted order.
type CheckoutOutput struct {
	Order *entity.Order
}

// OrderUsecase defines the interface for checkout and order history.
type OrderUsecase interface {
	// Checkout snapshots the session's cart into an order (point-in-time
	// prices), persists it and clears the cart. Requires an active session.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// ListMine returns the active session user's orders in storage order;
	// display sorting is the delivery layer's concern.
	ListMine(ctx context.Context) ([]entity.Order, error)

	// PaymentQR renders a PNG QR code for a wallet-paid order.
	PaymentQR(ctx context.Context, orderID string) ([]byte, error)
}
