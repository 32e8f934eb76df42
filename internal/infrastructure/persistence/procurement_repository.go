package persistence

import (
	"context"
	"errors"

	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase by its ID
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Purchase, error) {
	var purchase procurement.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

// FindAll finds all purchases matching the filter
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Purchase, error) {
	var purchases []procurement.Purchase
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.Purchase{}), filter)
	query = applyPagination(query, filter, "purchase_date DESC")

	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Save creates or updates a purchase
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *procurement.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

// SaveWithVersion updates the purchase using the version for optimistic
// locking. Guards the one-shot fulfillment transition against concurrent
// fulfill requests.
func (r *GormPurchaseRepository) SaveWithVersion(ctx context.Context, purchase *procurement.Purchase) error {
	result := r.db.WithContext(ctx).Model(purchase).
		Where("id = ? AND version = ?", purchase.ID, purchase.Version-1).
		Updates(map[string]interface{}{
			"supplier_id":     purchase.SupplierID,
			"raw_material_id": purchase.RawMaterialID,
			"purchase_date":   purchase.PurchaseDate,
			"quantity_kg":     purchase.QuantityKg,
			"price_per_kg":    purchase.PricePerKg,
			"currency":        purchase.Currency,
			"fulfilled":       purchase.Fulfilled,
			"fulfilled_at":    purchase.FulfilledAt,
			"notes":           purchase.Notes,
			"version":         purchase.Version,
			"updated_at":      purchase.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a purchase
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.Purchase{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts purchases matching the filter
func (r *GormPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.Purchase{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySupplier counts purchases recorded against a supplier
func (r *GormPurchaseRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&procurement.Purchase{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByRawMaterial counts purchases recorded against a raw material
func (r *GormPurchaseRepository) CountByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&procurement.Purchase{}).
		Where("raw_material_id = ?", rawMaterialID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPurchaseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("notes ILIKE ?", searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "raw_material_id":
			query = query.Where("raw_material_id = ?", value)
		case "fulfilled":
			query = query.Where("fulfilled = ?", value)
		case "date_from":
			query = query.Where("purchase_date >= ?", value)
		case "date_to":
			query = query.Where("purchase_date <= ?", value)
		}
	}
	return query
}

var _ procurement.PurchaseRepository = (*GormPurchaseRepository)(nil)
