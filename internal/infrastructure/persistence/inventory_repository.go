package persistence

import (
	"context"
	"errors"

	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRawMaterialStockRepository implements RawMaterialStockRepository using GORM
type GormRawMaterialStockRepository struct {
	db *gorm.DB
}

// NewGormRawMaterialStockRepository creates a new GormRawMaterialStockRepository
func NewGormRawMaterialStockRepository(db *gorm.DB) *GormRawMaterialStockRepository {
	return &GormRawMaterialStockRepository{db: db}
}

// FindByID finds a stock record by its ID
func (r *GormRawMaterialStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.RawMaterialStock, error) {
	var stock inventory.RawMaterialStock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindByRawMaterial finds the stock record for a raw material
func (r *GormRawMaterialStockRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*inventory.RawMaterialStock, error) {
	var stock inventory.RawMaterialStock
	if err := r.db.WithContext(ctx).First(&stock, "raw_material_id = ?", rawMaterialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindAll finds all stock records matching the filter
func (r *GormRawMaterialStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterialStock, error) {
	var stocks []inventory.RawMaterialStock
	query := r.db.WithContext(ctx).Model(&inventory.RawMaterialStock{})
	query = applyPagination(query, filter, "created_at ASC")

	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save creates or updates a stock record
func (r *GormRawMaterialStockRepository) Save(ctx context.Context, stock *inventory.RawMaterialStock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// SaveWithVersion updates the stock record using the version for optimistic
// locking. Returns ErrConcurrencyConflict if another process updated the
// record since it was read.
func (r *GormRawMaterialStockRepository) SaveWithVersion(ctx context.Context, stock *inventory.RawMaterialStock) error {
	result := r.db.WithContext(ctx).Model(stock).
		Where("id = ? AND version = ?", stock.ID, stock.Version-1).
		Updates(map[string]interface{}{
			"quantity_kg": stock.QuantityKg,
			"version":     stock.Version,
			"updated_at":  stock.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Count counts stock records matching the filter
func (r *GormRawMaterialStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.RawMaterialStock{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormFinishedGoodsStockRepository implements FinishedGoodsStockRepository using GORM
type GormFinishedGoodsStockRepository struct {
	db *gorm.DB
}

// NewGormFinishedGoodsStockRepository creates a new GormFinishedGoodsStockRepository
func NewGormFinishedGoodsStockRepository(db *gorm.DB) *GormFinishedGoodsStockRepository {
	return &GormFinishedGoodsStockRepository{db: db}
}

// FindByID finds a stock record by its ID
func (r *GormFinishedGoodsStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.FinishedGoodsStock, error) {
	var stock inventory.FinishedGoodsStock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindByProduct finds the stock record for a finished product
func (r *GormFinishedGoodsStockRepository) FindByProduct(ctx context.Context, finishedProductID uuid.UUID) (*inventory.FinishedGoodsStock, error) {
	var stock inventory.FinishedGoodsStock
	if err := r.db.WithContext(ctx).First(&stock, "finished_product_id = ?", finishedProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindAll finds all stock records matching the filter
func (r *GormFinishedGoodsStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.FinishedGoodsStock, error) {
	var stocks []inventory.FinishedGoodsStock
	query := r.db.WithContext(ctx).Model(&inventory.FinishedGoodsStock{})
	query = applyPagination(query, filter, "created_at ASC")

	if err := query.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save creates or updates a stock record
func (r *GormFinishedGoodsStockRepository) Save(ctx context.Context, stock *inventory.FinishedGoodsStock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// SaveWithVersion updates the stock record using the version for optimistic locking
func (r *GormFinishedGoodsStockRepository) SaveWithVersion(ctx context.Context, stock *inventory.FinishedGoodsStock) error {
	result := r.db.WithContext(ctx).Model(stock).
		Where("id = ? AND version = ?", stock.ID, stock.Version-1).
		Updates(map[string]interface{}{
			"quantity_kg": stock.QuantityKg,
			"version":     stock.Version,
			"updated_at":  stock.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Count counts stock records matching the filter
func (r *GormFinishedGoodsStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.FinishedGoodsStock{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBelowThreshold counts finished products whose on-hand quantity is
// under the low-stock alert threshold
func (r *GormFinishedGoodsStockRepository) CountBelowThreshold(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&inventory.FinishedGoodsStock{}).
		Where("quantity_kg < ?", inventory.LowStockThresholdKg).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

var _ inventory.RawMaterialStockRepository = (*GormRawMaterialStockRepository)(nil)
var _ inventory.FinishedGoodsStockRepository = (*GormFinishedGoodsStockRepository)(nil)
