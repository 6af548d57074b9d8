package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// PricingSummary is the monetary breakdown of an order.
// GrandTotal is always exactly Subtotal + AddOnTotal + ServiceFee; there are
// no derived or hidden charges. Tax is deliberately absent: any tax line must
// be an explicitly supplied amount, never a silently applied percentage.
type PricingSummary struct {
	Subtotal          valueobject.Money
	AddOnTotal        valueobject.Money
	ServiceFeePercent decimal.Decimal
	ServiceFee        valueobject.Money
	GrandTotal        valueobject.Money
}

// ComputeSummary converts order lines and a service-fee percentage into a
// pricing summary. Pure: no side effects, same inputs always give the same
// summary. An empty line list yields an all-zero summary, not an error.
func ComputeSummary(lines []OrderLine, serviceFeePercent decimal.Decimal) PricingSummary {
	subtotal := valueobject.ZeroMoney()
	addOnTotal := valueobject.ZeroMoney()

	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
		if line.HasAddOn() {
			addOnTotal = addOnTotal.Add(line.AddOnTotal())
		}
	}

	serviceFee := valueobject.ZeroMoney()
	if !serviceFeePercent.IsZero() {
		serviceFee = subtotal.CalculatePercentage(serviceFeePercent)
	}

	return PricingSummary{
		Subtotal:          subtotal,
		AddOnTotal:        addOnTotal,
		ServiceFeePercent: serviceFeePercent,
		ServiceFee:        serviceFee,
		GrandTotal:        subtotal.Add(addOnTotal).Add(serviceFee),
	}
}

// HasAddOns returns true if any line carried an add-on charge
func (p PricingSummary) HasAddOns() bool {
	return !p.AddOnTotal.IsZero()
}

// HasServiceFee returns true if a service fee was applied
func (p PricingSummary) HasServiceFee() bool {
	return !p.ServiceFee.IsZero()
}
