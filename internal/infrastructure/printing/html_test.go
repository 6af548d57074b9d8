package printing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHTML(t *testing.T) {
	doc := billDocument(t)
	html := documentHTML(doc)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<pre>")
	assert.Contains(t, html, "monospace")
	assert.Contains(t, html, "Hotel Udupi Grand")

	// emphasized rows are wrapped in <b>
	require.Contains(t, html, "<b>")
	assert.Contains(t, html, "</b>")

	// row count survives the conversion
	assert.Equal(t, len(doc.Rows())-1, strings.Count(html, "\n"))
}
