// Package delivery defines the contract every transport front end fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// lifecycle. Serve blocks until the server stops; shutdown is driven by the
// lifecycle hooks, not by cancelling ctx.
type Delivery interface {
	Serve(ctx context.Context) error
}
