package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// Order is the active order-line collection for one billing location.
// It is created when a location is selected, mutated by line operations,
// persisted after every mutation, and cleared only after the customer bill
// has been delivered to paper.
type Order struct {
	shared.BaseAggregateRoot
	Location BillingLocation
	Lines    []OrderLine
}

// NewOrder opens an empty order for a billing location
func NewOrder(location BillingLocation) (*Order, error) {
	if !location.Mode.IsValid() || location.Number < 1 {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Billing location is not valid")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Location:          location,
		Lines:             make([]OrderLine, 0),
	}

	order.AddDomainEvent(NewOrderOpenedEvent(order))

	return order, nil
}

// AddLine adds a line to the order. Adding an item that is already on the
// order increases its quantity instead of creating a duplicate row.
func (o *Order) AddLine(line OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	for i := range o.Lines {
		if o.Lines[i].ItemID == line.ItemID {
			o.Lines[i].Quantity += line.Quantity
			o.touch()
			return nil
		}
	}

	o.Lines = append(o.Lines, line)
	o.touch()
	return nil
}

// UpdateQuantity sets the quantity for an item. Setting quantity to zero
// removes the line entirely.
func (o *Order) UpdateQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_LINE", "Quantity cannot be negative")
	}
	if quantity == 0 {
		return o.RemoveLine(itemID)
	}

	for i := range o.Lines {
		if o.Lines[i].ItemID == itemID {
			o.Lines[i].Quantity = quantity
			o.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// SetAddOn attaches an add-on (parcel/packing) charge to a line.
// A zero charge clears the add-on.
func (o *Order) SetAddOn(itemID uuid.UUID, charge valueobject.Money, tier string) error {
	if charge.IsNegative() {
		return shared.NewDomainError("INVALID_LINE", "Add-on charge cannot be negative")
	}

	for i := range o.Lines {
		if o.Lines[i].ItemID == itemID {
			o.Lines[i].AddOnCharge = charge
			if charge.IsZero() {
				o.Lines[i].AddOnTier = ""
			} else {
				o.Lines[i].AddOnTier = tier
			}
			o.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveLine deletes a line from the order
func (o *Order) RemoveLine(itemID uuid.UUID) error {
	for i := range o.Lines {
		if o.Lines[i].ItemID == itemID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			o.touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes every line after a successful bill delivery
func (o *Order) Clear() {
	if len(o.Lines) == 0 {
		return
	}
	o.Lines = o.Lines[:0]
	o.touch()
	o.AddDomainEvent(NewOrderClearedEvent(o))
}

// MarkBilled records a delivered customer bill and empties the order so the
// location is free for the next customer
func (o *Order) MarkBilled(billNumber string, summary PricingSummary) error {
	if o.IsEmpty() {
		return shared.NewDomainError("INVALID_STATE", "Cannot bill an empty order")
	}
	o.AddDomainEvent(NewOrderBilledEvent(o, billNumber, summary))
	o.Lines = o.Lines[:0]
	o.touch()
	return nil
}

// IsEmpty returns true if the order has no lines
func (o *Order) IsEmpty() bool {
	return len(o.Lines) == 0
}

// ItemCount returns the total unit count across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return count
}

// Validate checks every line; a failure means the persisted order is corrupt
// and must not reach the renderer
func (o *Order) Validate() error {
	for _, l := range o.Lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
