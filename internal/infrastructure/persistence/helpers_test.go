package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

func renderedTicket(t *testing.T) *printing.Document {
	t.Helper()

	renderer, err := printing.NewRenderer(printing.ProfileNarrow, nil)
	require.NoError(t, err)

	line, err := ordering.NewOrderLine(uuid.New(), "Masala Dosa", valueobject.NewMoneyFromFloat(80), 2)
	require.NoError(t, err)

	location, err := ordering.NewBillingLocation(ordering.ModeTable, 5)
	require.NoError(t, err)

	doc, err := renderer.RenderTicket(
		catalog.Group{Station: "kitchen", Lines: []ordering.OrderLine{line}},
		location,
		time.Date(2026, 8, 23, 13, 45, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return doc
}
