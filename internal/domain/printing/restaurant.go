package printing

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
)

// RestaurantProfile is the identity block printed at the top of a bill.
// Registration identifiers are optional and displayed only when present.
type RestaurantProfile struct {
	Name         string
	AddressLines []string
	Phone        string
	GSTIN        string
	FSSAI        string
	Closing      string // closing message in the bill footer
}

// Validate checks the profile can head a customer bill
func (p RestaurantProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewDomainError("INVALID_PROFILE", "Restaurant name cannot be empty")
	}
	return nil
}
