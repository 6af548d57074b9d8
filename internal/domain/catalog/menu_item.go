package catalog

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// Station is the routing-group label attached to a menu item at catalog time.
// It decides which preparation ticket an ordered item lands on. Stations are
// free-form labels declared by the catalog, not a closed enum; unknown or
// missing labels fall back to the default station.
type Station string

// DefaultStation receives every item without a recognised routing label
const DefaultStation Station = "kitchen"

// IsZero returns true for an unset station label
func (s Station) IsZero() bool {
	return strings.TrimSpace(string(s)) == ""
}

// String returns the string representation of Station
func (s Station) String() string {
	return string(s)
}

// Title returns the station label formatted for a ticket header, e.g. "KITCHEN"
func (s Station) Title() string {
	return strings.ToUpper(string(s))
}

// MenuItem is a catalog entry. Position records the declaration order in the
// menu, which fixes the station ordering used when printing tickets.
type MenuItem struct {
	shared.BaseAggregateRoot
	Name     string
	Price    valueobject.Money
	Station  Station
	Position int
	Active   bool
}

// NewMenuItem creates a validated menu item
func NewMenuItem(name string, price valueobject.Money, station Station, position int) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item price cannot be negative")
	}
	if station.IsZero() {
		station = DefaultStation
	}

	return &MenuItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Price:             price,
		Station:           station,
		Position:          position,
		Active:            true,
	}, nil
}
