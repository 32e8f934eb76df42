package persistence

import (
	"context"
	"errors"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRawMaterialRepository implements RawMaterialRepository using GORM
type GormRawMaterialRepository struct {
	db *gorm.DB
}

// NewGormRawMaterialRepository creates a new GormRawMaterialRepository
func NewGormRawMaterialRepository(db *gorm.DB) *GormRawMaterialRepository {
	return &GormRawMaterialRepository{db: db}
}

// FindByID finds a raw material by its ID
func (r *GormRawMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.RawMaterial, error) {
	var material catalog.RawMaterial
	if err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindByName finds a raw material by its exact name
func (r *GormRawMaterialRepository) FindByName(ctx context.Context, name string) (*catalog.RawMaterial, error) {
	var material catalog.RawMaterial
	if err := r.db.WithContext(ctx).First(&material, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindAll finds all raw materials matching the filter
func (r *GormRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.RawMaterial, error) {
	var materials []catalog.RawMaterial
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.RawMaterial{}), filter)
	query = applyPagination(query, filter, "name ASC")

	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Save creates or updates a raw material
func (r *GormRawMaterialRepository) Save(ctx context.Context, material *catalog.RawMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// Delete deletes a raw material
func (r *GormRawMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.RawMaterial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts raw materials matching the filter
func (r *GormRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.RawMaterial{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks whether a raw material with the given name exists
func (r *GormRawMaterialRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.RawMaterial{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRawMaterialRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// GormFinishedProductRepository implements FinishedProductRepository using GORM
type GormFinishedProductRepository struct {
	db *gorm.DB
}

// NewGormFinishedProductRepository creates a new GormFinishedProductRepository
func NewGormFinishedProductRepository(db *gorm.DB) *GormFinishedProductRepository {
	return &GormFinishedProductRepository{db: db}
}

// FindByID finds a finished product by its ID
func (r *GormFinishedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FinishedProduct, error) {
	var product catalog.FinishedProduct
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all finished products matching the filter
func (r *GormFinishedProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.FinishedProduct, error) {
	var products []catalog.FinishedProduct
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.FinishedProduct{}), filter)
	query = applyPagination(query, filter, "name ASC")

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByType finds finished products of a given type
func (r *GormFinishedProductRepository) FindByType(ctx context.Context, productType catalog.ProductType, filter shared.Filter) ([]catalog.FinishedProduct, error) {
	var products []catalog.FinishedProduct
	query := r.db.WithContext(ctx).Model(&catalog.FinishedProduct{}).Where("type = ?", productType)
	query = applyPagination(query, filter, "name ASC")

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a finished product
func (r *GormFinishedProductRepository) Save(ctx context.Context, product *catalog.FinishedProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a finished product
func (r *GormFinishedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.FinishedProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts finished products matching the filter
func (r *GormFinishedProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.FinishedProduct{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormFinishedProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR presentation ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		}
	}
	return query
}

var _ catalog.RawMaterialRepository = (*GormRawMaterialRepository)(nil)
var _ catalog.FinishedProductRepository = (*GormFinishedProductRepository)(nil)
