package ordering

import (
	"context"
)

// OrderRepository persists the active order per billing location
type OrderRepository interface {
	// FindByLocation returns the active order for a location, or
	// shared.ErrNotFound when no order is open there
	FindByLocation(ctx context.Context, location BillingLocation) (*Order, error)

	// Save upserts the order and its lines
	Save(ctx context.Context, order *Order) error

	// Delete removes the order for a location entirely (not merely emptied
	// in memory) after its bill has been delivered
	Delete(ctx context.Context, location BillingLocation) error
}
