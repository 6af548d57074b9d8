package printing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/shared"
)

// DeliveryRecordRepository persists the print audit trail
type DeliveryRecordRepository interface {
	// FindByID retrieves a record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryRecord, error)

	// FindRecent retrieves records ordered by creation time descending
	FindRecent(ctx context.Context, filter shared.Filter) (*shared.Paginated[*DeliveryRecord], error)

	// CountBillsOn counts bill records created within the given day, which
	// seeds the day-scoped bill sequence
	CountBillsOn(ctx context.Context, day time.Time) (int64, error)

	// Save persists a record (insert or update)
	Save(ctx context.Context, rec *DeliveryRecord) error
}
