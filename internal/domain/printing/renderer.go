package printing

import (
	"fmt"
	"time"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/shared"
)

const timestampLayout = "02-Jan-2006 15:04"

// Renderer turns classified order lines into printable documents for one
// width profile. Rendering is pure: the bill number and clock reading are
// supplied by the caller, and the same inputs always produce the same
// document.
type Renderer struct {
	profile WidthProfile
	abbr    *Abbreviator
}

// NewRenderer creates a renderer for a width profile and an abbreviation
// dictionary
func NewRenderer(profile WidthProfile, abbr *Abbreviator) (*Renderer, error) {
	if !profile.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROFILE", "Unknown width profile: "+profile.String())
	}
	if abbr == nil {
		abbr = NewAbbreviator(nil)
	}
	return &Renderer{profile: profile, abbr: abbr}, nil
}

// Profile returns the width profile the renderer lays out for
func (r *Renderer) Profile() WidthProfile {
	return r.profile
}

// RenderTicket renders the price-free preparation ticket for one routing
// group. No monetary data appears on a ticket under any circumstance.
func (r *Renderer) RenderTicket(group catalog.Group, location ordering.BillingLocation, at time.Time) (*Document, error) {
	if len(group.Lines) == 0 {
		return nil, shared.NewDomainError("NOTHING_TO_PRINT", "Routing group has no lines to print")
	}

	names := make([]string, len(group.Lines))
	for i, line := range group.Lines {
		names[i] = line.Name
	}
	layout := ComputeLayout(names, r.profile)
	nameWidth := layout.TicketNameWidth()

	doc := &Document{
		Kind:         KindTicket,
		Station:      group.Station.String(),
		LocationText: location.Text(),
		PrintedAt:    at,
		Width:        layout.Total,
	}

	doc.rows = append(doc.rows,
		Row{Text: center("** "+group.Station.Title()+" **", layout.Total), Emphasis: true},
		Row{Text: location.Text()},
		Row{Text: at.Format(timestampLayout)},
		Row{Text: divider(layout.Total)},
	)

	for _, line := range group.Lines {
		name, truncated := r.abbr.Shorten(line.Name, nameWidth)
		if truncated {
			doc.diagnostics = append(doc.diagnostics, layoutPressure(line.Name, nameWidth))
		}
		qty := fmt.Sprintf("x%d", line.Quantity)
		doc.rows = append(doc.rows, Row{
			Text: padRight(name, nameWidth) + " " + padLeft(qty, layout.Qty),
		})
	}

	doc.rows = append(doc.rows,
		Row{Text: divider(layout.Total)},
		Row{Text: fmt.Sprintf("Items: %d", group.ItemCount())},
	)

	if err := checkFit(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// RenderBill renders the priced customer bill for the whole order. The bill
// number comes from the caller to keep rendering deterministic.
func (r *Renderer) RenderBill(
	lines []ordering.OrderLine,
	pricing ordering.PricingSummary,
	location ordering.BillingLocation,
	profile RestaurantProfile,
	billNumber string,
	at time.Time,
) (*Document, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NOTHING_TO_PRINT", "Order has no lines to bill")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}

	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = line.Name
	}
	layout := ComputeLayout(names, r.profile)

	doc := &Document{
		Kind:         KindBill,
		BillNumber:   billNumber,
		LocationText: location.Text(),
		PrintedAt:    at,
		Width:        layout.Total,
	}

	r.billHeader(doc, profile, layout)
	doc.rows = append(doc.rows,
		Row{Text: "Bill No: " + billNumber},
		Row{Text: location.Text()},
		Row{Text: at.Format(timestampLayout)},
		Row{Text: divider(layout.Total)},
		Row{Text: r.billColumnHeader(layout)},
		Row{Text: divider(layout.Total)},
	)

	for i, line := range lines {
		r.billLine(doc, layout, i+1, line)
	}

	doc.rows = append(doc.rows, Row{Text: divider(layout.Total)})
	r.billTotals(doc, pricing, layout)
	r.billFooter(doc, profile, layout)

	if err := checkFit(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *Renderer) billHeader(doc *Document, profile RestaurantProfile, layout Layout) {
	doc.rows = append(doc.rows, Row{Text: center(profile.Name, layout.Total), Emphasis: true})
	for _, addr := range profile.AddressLines {
		doc.rows = append(doc.rows, Row{Text: center(addr, layout.Total)})
	}
	if profile.Phone != "" {
		doc.rows = append(doc.rows, Row{Text: center("Ph: "+profile.Phone, layout.Total)})
	}
	if profile.GSTIN != "" {
		doc.rows = append(doc.rows, Row{Text: center("GSTIN: "+profile.GSTIN, layout.Total)})
	}
	if profile.FSSAI != "" {
		doc.rows = append(doc.rows, Row{Text: center("FSSAI: "+profile.FSSAI, layout.Total)})
	}
	doc.rows = append(doc.rows, Row{Text: divider(layout.Total)})
}

func (r *Renderer) billColumnHeader(layout Layout) string {
	return padRight("Item", layout.Name) + " " +
		padLeft("Qty", layout.Qty) + " " +
		padLeft("Rate", layout.Rate) + " " +
		padLeft("Amount", layout.Amount)
}

func (r *Renderer) billLine(doc *Document, layout Layout, seq int, line ordering.OrderLine) {
	prefix := fmt.Sprintf("%d.", seq)
	name, truncated := r.abbr.Shorten(line.Name, layout.Name-runeLen(prefix))
	if truncated {
		doc.diagnostics = append(doc.diagnostics, layoutPressure(line.Name, layout.Name-runeLen(prefix)))
	}

	doc.rows = append(doc.rows, Row{
		Text: padRight(prefix+name, layout.Name) + " " +
			padLeft(fmt.Sprintf("x%d", line.Quantity), layout.Qty) + " " +
			padLeft(line.UnitPrice.Display(), layout.Rate) + " " +
			padLeft(line.LineTotal().Display(), layout.Amount),
	})

	if line.HasAddOn() {
		tier := line.AddOnTier
		if tier == "" {
			tier = "add-on"
		}
		amount := line.AddOnTotal().Display()
		tierWidth := layout.Total - runeLen(amount) - runeLen("  + ") - 1
		short, truncated := r.abbr.Shorten(tier, tierWidth)
		if truncated {
			doc.diagnostics = append(doc.diagnostics, layoutPressure(tier, tierWidth))
		}
		label := "  + " + short
		doc.rows = append(doc.rows, Row{
			Text: padRight(label, layout.Total-runeLen(amount)) + amount,
		})
	}
}

func (r *Renderer) billTotals(doc *Document, pricing ordering.PricingSummary, layout Layout) {
	doc.rows = append(doc.rows, totalRow("Subtotal", pricing.Subtotal.Display(), layout.Total))
	if pricing.HasAddOns() {
		doc.rows = append(doc.rows, totalRow("Add-on charges", pricing.AddOnTotal.Display(), layout.Total))
	}
	if pricing.HasServiceFee() {
		label := fmt.Sprintf("Service charge @%s%%", pricing.ServiceFeePercent.String())
		doc.rows = append(doc.rows, totalRow(label, pricing.ServiceFee.Display(), layout.Total))
	}
	doc.rows = append(doc.rows, Row{Text: divider(layout.Total)})
	grand := totalRow("TOTAL", pricing.GrandTotal.Display(), layout.Total)
	grand.Emphasis = true
	doc.rows = append(doc.rows, grand)
}

func (r *Renderer) billFooter(doc *Document, profile RestaurantProfile, layout Layout) {
	closing := profile.Closing
	if closing == "" {
		closing = "Thank you, visit again!"
	}
	doc.rows = append(doc.rows,
		Row{Text: divider(layout.Total)},
		Row{Text: center(closing, layout.Total)},
	)
}

func totalRow(label, amount string, width int) Row {
	return Row{Text: padRight(label, width-runeLen(amount)) + amount}
}

// checkFit verifies no rendered row exceeds the target width. This is
// checked, not assumed; a failure means a layout bug, not bad input.
func checkFit(doc *Document) error {
	for _, row := range doc.rows {
		if runeLen(row.Text) > doc.Width {
			return shared.NewDomainError("LAYOUT_OVERFLOW",
				fmt.Sprintf("Rendered row exceeds %d columns: %q", doc.Width, row.Text))
		}
	}
	return nil
}

func layoutPressure(name string, width int) string {
	return fmt.Sprintf("name %q could not be abbreviated to %d columns and was truncated", name, width)
}
