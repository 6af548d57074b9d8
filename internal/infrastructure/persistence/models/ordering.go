package models

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM model for the orders table. Exactly one row exists
// per (location_mode, location_number) pair at a time.
type OrderModel struct {
	AggregateModel
	LocationMode   string           `gorm:"column:location_mode;type:varchar(16);not null;uniqueIndex:idx_orders_location"`
	LocationNumber int              `gorm:"column:location_number;not null;uniqueIndex:idx_orders_location"`
	Lines          []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM model for the order_lines table
type OrderLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	ItemID      uuid.UUID       `gorm:"column:item_id;type:uuid;not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	AddOnCharge decimal.Decimal `gorm:"column:add_on_charge;type:decimal(12,2);not null;default:0"`
	AddOnTier   string          `gorm:"column:add_on_tier;type:varchar(32)"`
	Position    int             `gorm:"not null"`
}

// TableName returns the table name for OrderLineModel
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// ToDomain converts OrderModel to domain Order
func (m *OrderModel) ToDomain() *ordering.Order {
	order := &ordering.Order{
		Location: ordering.BillingLocation{
			Mode:   ordering.LocationMode(m.LocationMode),
			Number: m.LocationNumber,
		},
		Lines: make([]ordering.OrderLine, len(m.Lines)),
	}
	m.PopulateAggregateRoot(&order.BaseAggregateRoot)

	for i, lm := range m.Lines {
		order.Lines[i] = ordering.OrderLine{
			ItemID:      lm.ItemID,
			Name:        lm.Name,
			UnitPrice:   valueobject.NewMoney(lm.UnitPrice),
			Quantity:    lm.Quantity,
			AddOnCharge: valueobject.NewMoney(lm.AddOnCharge),
			AddOnTier:   lm.AddOnTier,
		}
	}
	return order
}

// OrderModelFromDomain creates an OrderModel from domain Order
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	model := &OrderModel{
		LocationMode:   o.Location.Mode.String(),
		LocationNumber: o.Location.Number,
		Lines:          make([]OrderLineModel, len(o.Lines)),
	}
	model.FromDomainAggregateRoot(o.BaseAggregateRoot)

	for i, line := range o.Lines {
		model.Lines[i] = OrderLineModel{
			ID:          uuid.New(),
			OrderID:     o.ID,
			ItemID:      line.ItemID,
			Name:        line.Name,
			UnitPrice:   line.UnitPrice.Amount(),
			Quantity:    line.Quantity,
			AddOnCharge: line.AddOnCharge.Amount(),
			AddOnTier:   line.AddOnTier,
			Position:    i,
		}
	}
	return model
}
