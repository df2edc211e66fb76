// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, background worker).
// Serve blocks until the delivery stops; shutdown is driven by the
// composition root's lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
