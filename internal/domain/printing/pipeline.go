package printing

import "context"

// DeliveryPipeline pushes a rendered document to paper through escalating
// channels. Implementations must always return a result: a document is
// either delivered or failed with a reason, never silently dropped.
type DeliveryPipeline interface {
	Deliver(ctx context.Context, doc *Document) DeliveryResult
}
