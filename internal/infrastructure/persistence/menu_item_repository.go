package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	var model models.MenuItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllActive returns the active catalog in declaration order
func (r *GormMenuItemRepository) FindAllActive(ctx context.Context) ([]catalog.MenuItem, error) {
	var itemModels []models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.MenuItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Snapshot builds a classification snapshot of the active catalog
func (r *GormMenuItemRepository) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	items, err := r.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(items), nil
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ catalog.MenuItemRepository = (*GormMenuItemRepository)(nil)
