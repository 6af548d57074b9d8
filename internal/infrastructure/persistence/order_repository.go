package persistence

import (
	"context"
	"errors"

	"github.com/pos/backend/internal/domain/ordering"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByLocation finds the active order for a billing location
func (r *GormOrderRepository) FindByLocation(ctx context.Context, location ordering.BillingLocation) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_lines.position ASC")
		}).
		Where("location_mode = ? AND location_number = ?", location.Mode.String(), location.Number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts the order and replaces its lines. Lines are rewritten as a
// whole so the stored order always matches the aggregate exactly.
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := model.Lines
		model.Lines = nil

		if err := tx.Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", model.ID).
			Delete(&models.OrderLineModel{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

// Delete removes the order for a location entirely, lines included
func (r *GormOrderRepository) Delete(ctx context.Context, location ordering.BillingLocation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.OrderModel
		if err := tx.
			Where("location_mode = ? AND location_number = ?", location.Mode.String(), location.Number).
			First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := tx.Where("order_id = ?", model.ID).
			Delete(&models.OrderLineModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OrderModel{}, "id = ?", model.ID).Error
	})
}

// Ensure GormOrderRepository implements OrderRepository
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
