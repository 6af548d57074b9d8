package printing

import (
	"fmt"
	"strings"
	"time"
)

// Row is one rendered line of a document. Emphasis marks rows a printer
// should render bold/double-height (the grand total, the header title).
type Row struct {
	Text     string
	Emphasis bool
}

// Document is a fully self-contained printable document. It is immutable
// once produced by a renderer: rows are only reachable through copying
// accessors, and a document is never mutated, only re-rendered.
type Document struct {
	Kind         DocumentKind
	Station      string // routing-group label; empty for a bill
	BillNumber   string // empty for a ticket
	LocationText string
	PrintedAt    time.Time
	Width        int

	rows        []Row
	diagnostics []string
}

// Rows returns a copy of the rendered rows in order
func (d *Document) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Text returns the document as plain text, one row per line
func (d *Document) Text() string {
	var b strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(row.Text)
	}
	return b.String()
}

// Diagnostics returns layout-pressure warnings collected while rendering,
// e.g. names that had to be hard-truncated
func (d *Document) Diagnostics() []string {
	out := make([]string, len(d.diagnostics))
	copy(out, d.diagnostics)
	return out
}

// Title returns a short job title for the print spooler
func (d *Document) Title() string {
	if d.Kind == KindBill {
		return fmt.Sprintf("Bill %s - %s", d.BillNumber, d.LocationText)
	}
	return fmt.Sprintf("KOT %s - %s", d.Station, d.LocationText)
}

// padRight left-aligns s in a cell of the given width. Widths are counted
// in runes, not bytes, so the currency symbol does not skew columns.
func padRight(s string, width int) string {
	gap := width - runeLen(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// padLeft right-aligns s in a cell of the given width
func padLeft(s string, width int) string {
	gap := width - runeLen(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// center centres s within the given width
func center(s string, width int) string {
	gap := width - runeLen(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s
}

// divider returns a full-width rule line
func divider(width int) string {
	return strings.Repeat("-", width)
}
