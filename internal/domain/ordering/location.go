package ordering

import (
	"fmt"

	"github.com/pos/backend/internal/domain/shared"
)

// LocationMode distinguishes dine-in tables from counter (takeaway) slots
type LocationMode string

const (
	ModeTable   LocationMode = "TABLE"
	ModeCounter LocationMode = "COUNTER"
)

// IsValid checks if the LocationMode is a valid value
func (m LocationMode) IsValid() bool {
	switch m {
	case ModeTable, ModeCounter:
		return true
	}
	return false
}

// String returns the string representation of LocationMode
func (m LocationMode) String() string {
	return string(m)
}

// AllLocationModes returns all valid LocationMode values
func AllLocationModes() []LocationMode {
	return []LocationMode{ModeTable, ModeCounter}
}

// BillingLocation identifies which persisted order an order-line set belongs to.
// Exactly one active order exists per (mode, number) pair at a time.
type BillingLocation struct {
	Mode   LocationMode
	Number int
}

// NewBillingLocation creates a validated billing location
func NewBillingLocation(mode LocationMode, number int) (BillingLocation, error) {
	if !mode.IsValid() {
		return BillingLocation{}, shared.NewDomainError("INVALID_LOCATION", "Location mode must be TABLE or COUNTER")
	}
	if number < 1 {
		return BillingLocation{}, shared.NewDomainError("INVALID_LOCATION", "Location number must be at least 1")
	}
	return BillingLocation{Mode: mode, Number: number}, nil
}

// Text returns the human-readable location label printed on documents
func (l BillingLocation) Text() string {
	switch l.Mode {
	case ModeCounter:
		return fmt.Sprintf("Counter %d", l.Number)
	default:
		return fmt.Sprintf("Table %d", l.Number)
	}
}

// Key returns a stable identifier for the location, e.g. "TABLE:5"
func (l BillingLocation) Key() string {
	return fmt.Sprintf("%s:%d", l.Mode, l.Number)
}
