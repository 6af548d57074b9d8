package models

import (
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MenuItemModel is the GORM model for the menu_items table. Position records
// the declaration order of the menu and drives station ordering on tickets.
type MenuItemModel struct {
	AggregateModel
	Name     string          `gorm:"type:varchar(100);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Station  string          `gorm:"type:varchar(64);not null"`
	Position int             `gorm:"not null;index"`
	Active   bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for MenuItemModel
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToDomain converts MenuItemModel to domain MenuItem
func (m *MenuItemModel) ToDomain() *catalog.MenuItem {
	item := &catalog.MenuItem{
		Name:     m.Name,
		Price:    valueobject.NewMoney(m.Price),
		Station:  catalog.Station(m.Station),
		Position: m.Position,
		Active:   m.Active,
	}
	m.PopulateAggregateRoot(&item.BaseAggregateRoot)
	return item
}

// MenuItemModelFromDomain creates a MenuItemModel from domain MenuItem
func MenuItemModelFromDomain(item *catalog.MenuItem) *MenuItemModel {
	model := &MenuItemModel{
		Name:     item.Name,
		Price:    item.Price.Amount(),
		Station:  item.Station.String(),
		Position: item.Position,
		Active:   item.Active,
	}
	model.FromDomainAggregateRoot(item.BaseAggregateRoot)
	return model
}
