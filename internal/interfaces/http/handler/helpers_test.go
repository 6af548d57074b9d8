package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// In-memory repository stubs backing real application services in tests

type stubOrderRepo struct {
	orders  map[string]*ordering.Order
	deleted []string
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*ordering.Order)}
}

func (r *stubOrderRepo) FindByLocation(_ context.Context, location ordering.BillingLocation) (*ordering.Order, error) {
	order, ok := r.orders[location.Key()]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

func (r *stubOrderRepo) Save(_ context.Context, order *ordering.Order) error {
	r.orders[order.Location.Key()] = order
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, location ordering.BillingLocation) error {
	delete(r.orders, location.Key())
	r.deleted = append(r.deleted, location.Key())
	return nil
}

type stubMenuRepo struct {
	items []catalog.MenuItem
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubMenuRepo) FindAllActive(_ context.Context) ([]catalog.MenuItem, error) {
	return r.items, nil
}

func (r *stubMenuRepo) Snapshot(_ context.Context) (*catalog.Snapshot, error) {
	return catalog.NewSnapshot(r.items), nil
}

type stubRecordRepo struct {
	saved     []*printing.DeliveryRecord
	billCount int64
}

func (r *stubRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*printing.DeliveryRecord, error) {
	for _, rec := range r.saved {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubRecordRepo) FindRecent(_ context.Context, filter shared.Filter) (*shared.Paginated[*printing.DeliveryRecord], error) {
	page := shared.NewPaginated(r.saved, int64(len(r.saved)), filter.Page, filter.Limit())
	return &page, nil
}

func (r *stubRecordRepo) CountBillsOn(_ context.Context, _ time.Time) (int64, error) {
	return r.billCount, nil
}

func (r *stubRecordRepo) Save(_ context.Context, rec *printing.DeliveryRecord) error {
	r.saved = append(r.saved, rec)
	return nil
}

// stubPipeline delivers everything silently on the first attempt
type stubPipeline struct {
	delivered []*printing.Document
}

func (p *stubPipeline) Deliver(_ context.Context, doc *printing.Document) printing.DeliveryResult {
	p.delivered = append(p.delivered, doc)
	return printing.DeliveredVia(printing.ChannelSilent, 1, 100*time.Millisecond)
}

func menuFixture(t *testing.T) *stubMenuRepo {
	t.Helper()
	dosa, err := catalog.NewMenuItem("Masala Dosa", valueobject.NewMoneyFromFloat(80), "kitchen", 1)
	require.NoError(t, err)
	coffee, err := catalog.NewMenuItem("Filter Coffee", valueobject.NewMoneyFromFloat(25), "drinks", 2)
	require.NoError(t, err)
	return &stubMenuRepo{items: []catalog.MenuItem{*dosa, *coffee}}
}
