package catalog

import (
	"context"

	"github.com/google/uuid"
)

// MenuItemRepository provides read access to the menu catalog
type MenuItemRepository interface {
	// FindByID retrieves one menu item, shared.ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindAllActive returns the active catalog in declaration order
	FindAllActive(ctx context.Context) ([]MenuItem, error)

	// Snapshot builds a classification snapshot of the active catalog
	Snapshot(ctx context.Context) (*Snapshot, error)
}
