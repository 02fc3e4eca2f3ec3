// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving entrypoint, e.g. an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
