package persistence

import (
	"context"
	"errors"

	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperationRepository implements OperationRepository using GORM
type GormOperationRepository struct {
	db *gorm.DB
}

// NewGormOperationRepository creates a new GormOperationRepository
func NewGormOperationRepository(db *gorm.DB) *GormOperationRepository {
	return &GormOperationRepository{db: db}
}

// FindByID finds an operation by its ID without loading cost lines
func (r *GormOperationRepository) FindByID(ctx context.Context, id uuid.UUID) (*processing.Operation, error) {
	var operation processing.Operation
	if err := r.db.WithContext(ctx).First(&operation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &operation, nil
}

// FindByIDWithCosts loads the operation together with its cost lines
func (r *GormOperationRepository) FindByIDWithCosts(ctx context.Context, id uuid.UUID) (*processing.Operation, error) {
	var operation processing.Operation
	if err := r.db.WithContext(ctx).Preload("Costs").First(&operation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &operation, nil
}

// FindAll finds all operations matching the filter
func (r *GormOperationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]processing.Operation, error) {
	var operations []processing.Operation
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&processing.Operation{}), filter)
	query = applyPagination(query, filter, "operation_date DESC")

	if err := query.Find(&operations).Error; err != nil {
		return nil, err
	}
	return operations, nil
}

// Save creates or updates an operation. Cost lines are managed through their
// own repository, so associations are not written here.
func (r *GormOperationRepository) Save(ctx context.Context, operation *processing.Operation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(operation).Error
}

// SaveWithVersion updates the operation using the version for optimistic
// locking. Guards the one-shot posting transition against concurrent posts.
func (r *GormOperationRepository) SaveWithVersion(ctx context.Context, operation *processing.Operation) error {
	result := r.db.WithContext(ctx).Model(operation).
		Where("id = ? AND version = ?", operation.ID, operation.Version-1).
		Updates(map[string]interface{}{
			"operation_date":      operation.OperationDate,
			"raw_material_id":     operation.RawMaterialID,
			"finished_product_id": operation.FinishedProductID,
			"input_kg":            operation.InputKg,
			"yield_percent":       operation.YieldPercent,
			"output_kg":           operation.OutputKg,
			"posted":              operation.Posted,
			"posted_at":           operation.PostedAt,
			"notes":               operation.Notes,
			"version":             operation.Version,
			"updated_at":          operation.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes an operation together with its cost lines
func (r *GormOperationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&processing.Cost{}, "operation_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&processing.Operation{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts operations matching the filter
func (r *GormOperationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&processing.Operation{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountUnposted counts operations not yet posted to inventory
func (r *GormOperationRepository) CountUnposted(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&processing.Operation{}).
		Where("posted = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByRawMaterial counts operations consuming a raw material
func (r *GormOperationRepository) CountByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&processing.Operation{}).
		Where("raw_material_id = ?", rawMaterialID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountByFinishedProduct counts operations producing a finished product
func (r *GormOperationRepository) CountByFinishedProduct(ctx context.Context, finishedProductID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&processing.Operation{}).
		Where("finished_product_id = ?", finishedProductID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOperationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("notes ILIKE ?", searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "raw_material_id":
			query = query.Where("raw_material_id = ?", value)
		case "finished_product_id":
			query = query.Where("finished_product_id = ?", value)
		case "posted":
			query = query.Where("posted = ?", value)
		case "date_from":
			query = query.Where("operation_date >= ?", value)
		case "date_to":
			query = query.Where("operation_date <= ?", value)
		}
	}
	return query
}

// GormCostRepository implements CostRepository using GORM
type GormCostRepository struct {
	db *gorm.DB
}

// NewGormCostRepository creates a new GormCostRepository
func NewGormCostRepository(db *gorm.DB) *GormCostRepository {
	return &GormCostRepository{db: db}
}

// FindByID finds a cost line by its ID
func (r *GormCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*processing.Cost, error) {
	var cost processing.Cost
	if err := r.db.WithContext(ctx).First(&cost, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cost, nil
}

// FindByOperation finds all cost lines attached to an operation
func (r *GormCostRepository) FindByOperation(ctx context.Context, operationID uuid.UUID) ([]processing.Cost, error) {
	var costs []processing.Cost
	err := r.db.WithContext(ctx).
		Where("operation_id = ?", operationID).
		Order("created_at ASC").
		Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

// Save creates or updates a cost line
func (r *GormCostRepository) Save(ctx context.Context, cost *processing.Cost) error {
	return r.db.WithContext(ctx).Save(cost).Error
}

// Delete deletes a cost line
func (r *GormCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&processing.Cost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ processing.OperationRepository = (*GormOperationRepository)(nil)
var _ processing.CostRepository = (*GormCostRepository)(nil)
