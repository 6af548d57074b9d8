package printing

import (
	"bytes"

	"github.com/pos/backend/internal/domain/printing"
)

// ESC/POS command sequences understood by thermal receipt printers
var (
	escInit        = []byte{0x1b, 0x40}       // ESC @  reset
	escEmphasisOn  = []byte{0x1b, 0x45, 0x01} // ESC E 1
	escEmphasisOff = []byte{0x1b, 0x45, 0x00} // ESC E 0
	escFeedLines   = []byte{0x1b, 0x64, 0x04} // ESC d 4  feed before cut
	gsCut          = []byte{0x1d, 0x56, 0x42, 0x00} // GS V B 0 partial cut
)

// encodeESCPOS turns a rendered document into the byte stream a thermal
// printer consumes: reset, rows with emphasis toggled per row, feed, cut.
// Layout is already final; the encoder adds no formatting of its own.
func encodeESCPOS(doc *printing.Document) []byte {
	var buf bytes.Buffer
	buf.Write(escInit)

	for _, row := range doc.Rows() {
		if row.Emphasis {
			buf.Write(escEmphasisOn)
		}
		buf.WriteString(row.Text)
		if row.Emphasis {
			buf.Write(escEmphasisOff)
		}
		buf.WriteByte('\n')
	}

	buf.Write(escFeedLines)
	buf.Write(gsCut)
	return buf.Bytes()
}
