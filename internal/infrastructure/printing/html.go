package printing

import (
	"html"
	"strings"

	"github.com/pos/backend/internal/domain/printing"
)

// documentHTML lays the document out as a minimal monospace page sized for
// the receipt stock, so a browser print of it matches the raw-text layout
// column for column.
func documentHTML(doc *printing.Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"UTF-8\">")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(doc.Title()))
	b.WriteString("</title><style>")
	b.WriteString("body{margin:0;padding:2mm}")
	b.WriteString("pre{font-family:monospace;font-size:9pt;line-height:1.2;margin:0;white-space:pre}")
	b.WriteString("b{font-weight:700}")
	b.WriteString("</style></head><body><pre>")

	for i, row := range doc.Rows() {
		if i > 0 {
			b.WriteString("\n")
		}
		escaped := html.EscapeString(row.Text)
		if row.Emphasis {
			b.WriteString("<b>")
			b.WriteString(escaped)
			b.WriteString("</b>")
		} else {
			b.WriteString(escaped)
		}
	}

	b.WriteString("</pre></body></html>")
	return b.String()
}
