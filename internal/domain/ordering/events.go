package ordering

import (
	"github.com/pos/backend/internal/domain/shared"
)

// Event types for the ordering domain
const (
	EventTypeOrderOpened  = "ordering.order.opened"
	EventTypeOrderCleared = "ordering.order.cleared"
	EventTypeOrderBilled  = "ordering.order.billed"
)

const aggregateTypeOrder = "Order"

// OrderOpenedEvent is raised when an order is opened for a location
type OrderOpenedEvent struct {
	shared.BaseDomainEvent
	Location string `json:"location"`
}

// NewOrderOpenedEvent creates a new OrderOpenedEvent
func NewOrderOpenedEvent(order *Order) *OrderOpenedEvent {
	return &OrderOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderOpened, aggregateTypeOrder, order.ID),
		Location:        order.Location.Key(),
	}
}

// OrderClearedEvent is raised when an order's lines are cleared after billing
type OrderClearedEvent struct {
	shared.BaseDomainEvent
	Location string `json:"location"`
}

// NewOrderClearedEvent creates a new OrderClearedEvent
func NewOrderClearedEvent(order *Order) *OrderClearedEvent {
	return &OrderClearedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCleared, aggregateTypeOrder, order.ID),
		Location:        order.Location.Key(),
	}
}

// OrderBilledEvent is raised when a bill for the order reaches paper
type OrderBilledEvent struct {
	shared.BaseDomainEvent
	Location   string `json:"location"`
	BillNumber string `json:"bill_number"`
	GrandTotal string `json:"grand_total"`
}

// NewOrderBilledEvent creates a new OrderBilledEvent
func NewOrderBilledEvent(order *Order, billNumber string, summary PricingSummary) *OrderBilledEvent {
	return &OrderBilledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderBilled, aggregateTypeOrder, order.ID),
		Location:        order.Location.Key(),
		BillNumber:      billNumber,
		GrandTotal:      summary.GrandTotal.StringFixed(),
	}
}
