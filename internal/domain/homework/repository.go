package homework

import "context"

// Journal persists deliveries for auditing. It is never read back to restore tracking state.
type Journal interface {
	Record(ctx context.Context, d *Delivery) error
}
