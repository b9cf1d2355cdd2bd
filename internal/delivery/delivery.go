// Package delivery defines the contract every transport (API server, worker) fulfils.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
