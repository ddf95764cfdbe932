// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// OrderStatus represents the lifecycle stage of an order. Status is fixed at
// creation in this layer; no transition operation exists (the tracking
// timeline rendered by clients is display-only).
type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderReadyToShip    OrderStatus = "Ready to Ship"
	OrderShipped        OrderStatus = "Shipped"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// PaymentMethod is the closed set of supported checkout payment options.
type PaymentMethod string

const (
	PaymentCOD       PaymentMethod = "COD"
	PaymentESewa     PaymentMethod = "eSewa"
	PaymentKhalti    PaymentMethod = "Khalti"
	PaymentIMEPay    PaymentMethod = "IME Pay"
	PaymentMoru      PaymentMethod = "Moru"
	PaymentBank      PaymentMethod = "Bank"
	PaymentDebitCard PaymentMethod = "Debit Card"
)

// paymentMethods lists every accepted method; wallet methods additionally get
// a payment QR code at checkout.
var paymentMethods = []PaymentMethod{
	PaymentCOD, PaymentESewa, PaymentKhalti, PaymentIMEPay,
	PaymentMoru, PaymentBank, PaymentDebitCard,
}

var walletMethods = []PaymentMethod{
	PaymentESewa, PaymentKhalti, PaymentIMEPay, PaymentMoru,
}

// IsValid checks if the PaymentMethod is one of the supported options.
func (m PaymentMethod) IsValid() bool {
	return slices.Contains(paymentMethods, m)
}

// IsWallet reports whether the method is a digital wallet.
func (m PaymentMethod) IsWallet() bool {
	return slices.Contains(walletMethods, m)
}

// OrderLine is a point-in-time copy of a purchased product: the price is
// captured at checkout and does not track later catalog changes.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a persisted checkout record. CustomerName is denormalized display
// data, not a foreign key into the user collection. TotalAmount is computed by
// the caller before persistence and is not re-validated against the lines.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	Products      []OrderLine   `json:"products"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}
