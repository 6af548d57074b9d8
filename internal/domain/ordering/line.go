package ordering

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// OrderLine is a single item entry on an order.
// UnitPrice is the post-discount price actually charged per unit.
// AddOnCharge is an optional per-unit surcharge (parcel/packing) with a tier label.
type OrderLine struct {
	ItemID      uuid.UUID
	Name        string
	UnitPrice   valueobject.Money
	Quantity    int
	AddOnCharge valueobject.Money
	AddOnTier   string
}

// NewOrderLine creates a validated order line
func NewOrderLine(itemID uuid.UUID, name string, unitPrice valueobject.Money, quantity int) (OrderLine, error) {
	if itemID == uuid.Nil {
		return OrderLine{}, shared.NewDomainError("INVALID_LINE", "Item ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return OrderLine{}, shared.NewDomainError("INVALID_LINE", "Item name cannot be empty")
	}
	if quantity < 1 {
		return OrderLine{}, shared.NewDomainError("INVALID_LINE", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return OrderLine{}, shared.NewDomainError("INVALID_LINE", "Unit price cannot be negative")
	}
	return OrderLine{
		ItemID:    itemID,
		Name:      strings.TrimSpace(name),
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}, nil
}

// HasAddOn returns true if the line carries a non-zero add-on charge
func (l OrderLine) HasAddOn() bool {
	return !l.AddOnCharge.IsZero()
}

// LineTotal returns unit price multiplied by quantity, excluding add-ons
func (l OrderLine) LineTotal() valueobject.Money {
	return l.UnitPrice.MultiplyByInt(int64(l.Quantity))
}

// AddOnTotal returns the add-on charge multiplied by quantity
func (l OrderLine) AddOnTotal() valueobject.Money {
	return l.AddOnCharge.MultiplyByInt(int64(l.Quantity))
}

// Validate re-checks the line invariants; used before printing to tell
// corrupt persisted data apart from a merely empty order
func (l OrderLine) Validate() error {
	if l.ItemID == uuid.Nil || strings.TrimSpace(l.Name) == "" {
		return shared.NewDomainError("CORRUPT_ORDER", "Order line is missing its item identity")
	}
	if l.Quantity < 1 {
		return shared.NewDomainError("CORRUPT_ORDER", "Order line has a non-positive quantity")
	}
	if l.UnitPrice.IsNegative() || l.AddOnCharge.IsNegative() {
		return shared.NewDomainError("CORRUPT_ORDER", "Order line has a negative amount")
	}
	return nil
}
