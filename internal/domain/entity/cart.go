// Package entity contains the core business objects of the project.
package entity

// CartItem pairs a product with a desired quantity. Carts are pure view state:
// they live in memory for the duration of a session and are never persisted.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // Always >= 1.
}

// Cart is the ordered list of items a session intends to buy.
type Cart []CartItem

// Count returns the total number of units across all items.
func (c Cart) Count() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}

	return total
}

// Subtotal returns the sum of price*quantity across all items.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c {
		total += item.Product.Price * float64(item.Quantity)
	}

	return total
}
