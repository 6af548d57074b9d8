package printing

// Column width bounds, in character units. The quantity/rate/amount columns
// are small and bounded; whatever remains goes to the name column, clamped so
// one long name cannot destroy the rest of the layout.
const (
	qtyColumnWidth    = 4 // "x999"
	rateColumnWidth   = 7 // "₹999.00"
	amountColumnWidth = 8 // "₹9999.00"
	minNameWidth      = 8
	maxNameWidth      = 22
)

// Layout holds the fixed column widths shared by every row of one document,
// so columns align. Computed once per render.
type Layout struct {
	Name   int
	Qty    int
	Rate   int
	Amount int
	Total  int
}

// ComputeLayout derives the column widths for a document from the names to
// be printed and the width profile in use. The fixed columns are reserved
// first; the name column receives the remaining width, sized to the longest
// name but kept within [minNameWidth, maxNameWidth].
func ComputeLayout(names []string, profile WidthProfile) Layout {
	total := profile.Columns()

	// three single-space separators between the four columns
	available := total - qtyColumnWidth - rateColumnWidth - amountColumnWidth - 3

	longest := 0
	for _, name := range names {
		if n := len([]rune(name)); n > longest {
			longest = n
		}
	}

	name := longest
	if name > available {
		name = available
	}
	if name > maxNameWidth {
		name = maxNameWidth
	}
	if name < minNameWidth {
		name = minNameWidth
	}
	if name > available {
		name = available
	}

	return Layout{
		Name:   name,
		Qty:    qtyColumnWidth,
		Rate:   rateColumnWidth,
		Amount: amountColumnWidth,
		Total:  total,
	}
}

// TicketNameWidth returns the name width for a ticket row, which has only
// name and quantity columns and can therefore give names more room.
func (l Layout) TicketNameWidth() int {
	return l.Total - l.Qty - 1
}
