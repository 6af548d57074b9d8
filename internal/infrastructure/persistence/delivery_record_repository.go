package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDeliveryRecordRepository implements DeliveryRecordRepository using GORM
type GormDeliveryRecordRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRecordRepository creates a new GormDeliveryRecordRepository
func NewGormDeliveryRecordRepository(db *gorm.DB) *GormDeliveryRecordRepository {
	return &GormDeliveryRecordRepository{db: db}
}

// FindByID finds a delivery record by ID
func (r *GormDeliveryRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*printing.DeliveryRecord, error) {
	var model models.DeliveryRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRecent returns records page by page, newest first by default
func (r *GormDeliveryRecordRepository) FindRecent(ctx context.Context, filter shared.Filter) (*shared.Paginated[*printing.DeliveryRecord], error) {
	query := r.db.WithContext(ctx).Model(&models.DeliveryRecordModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortField := ValidateSortField(filter.OrderBy, DeliveryRecordSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var recordModels []models.DeliveryRecordModel
	if err := query.
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*printing.DeliveryRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToDomain()
	}

	result := shared.NewPaginated(records, total, filter.Page, filter.Limit())
	return &result, nil
}

// CountBillsOn counts bill records created within the given day
func (r *GormDeliveryRecordRepository) CountBillsOn(ctx context.Context, day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DeliveryRecordModel{}).
		Where("kind = ? AND created_at >= ? AND created_at < ?", printing.KindBill.String(), start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save saves a record (insert or update)
func (r *GormDeliveryRecordRepository) Save(ctx context.Context, rec *printing.DeliveryRecord) error {
	model := models.DeliveryRecordModelFromDomain(rec)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormDeliveryRecordRepository implements DeliveryRecordRepository
var _ printing.DeliveryRecordRepository = (*GormDeliveryRecordRepository)(nil)
