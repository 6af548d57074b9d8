package printing

import (
	"context"

	"github.com/pos/backend/internal/domain/printing"
)

// Channel is one delivery mechanism in the escalation chain
type Channel interface {
	// Name identifies the channel in results and audit records
	Name() printing.DeliveryChannel

	// Deliver pushes the document to paper, returning the resolved printer
	// or device name on success. The context carries the per-attempt
	// timeout; implementations must respect cancellation.
	Deliver(ctx context.Context, doc *printing.Document) (string, error)
}
