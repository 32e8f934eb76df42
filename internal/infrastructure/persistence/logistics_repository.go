package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// FindByID finds a shipment by its ID without loading service charges
func (r *GormShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*logistics.Shipment, error) {
	var shipment logistics.Shipment
	if err := r.db.WithContext(ctx).First(&shipment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

// FindByIDWithServices loads the shipment together with its service charges
func (r *GormShipmentRepository) FindByIDWithServices(ctx context.Context, id uuid.UUID) (*logistics.Shipment, error) {
	var shipment logistics.Shipment
	if err := r.db.WithContext(ctx).Preload("Services").First(&shipment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shipment, nil
}

// FindAll finds all shipments matching the filter
func (r *GormShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.Shipment, error) {
	var shipments []logistics.Shipment
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&logistics.Shipment{}).Preload("Services"), filter)
	query = applyPagination(query, filter, "shipment_date DESC")

	if err := query.Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}

// FindBySalesOrder finds all shipments dispatched for a sales order
func (r *GormShipmentRepository) FindBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) ([]logistics.Shipment, error) {
	var shipments []logistics.Shipment
	err := r.db.WithContext(ctx).
		Preload("Services").
		Where("sales_order_id = ?", salesOrderID).
		Order("shipment_date DESC").
		Find(&shipments).Error
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

// Save creates or updates a shipment. Service charges are managed through
// their own repository, so associations are not written here.
func (r *GormShipmentRepository) Save(ctx context.Context, shipment *logistics.Shipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(shipment).Error
}

// Delete deletes a shipment together with its service charges and
// documentation checklist
func (r *GormShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&logistics.Service{}, "shipment_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&logistics.ExportDocumentation{}, "shipment_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&logistics.Shipment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts shipments matching the filter
func (r *GormShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&logistics.Shipment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountInWindow counts shipments whose date falls inside [from, to], both
// bounds inclusive
func (r *GormShipmentRepository) CountInWindow(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&logistics.Shipment{}).
		Where("shipment_date BETWEEN ? AND ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySalesOrder counts shipments dispatched for a sales order
func (r *GormShipmentRepository) CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&logistics.Shipment{}).
		Where("sales_order_id = ?", salesOrderID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormShipmentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("notes ILIKE ?", searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "sales_order_id":
			query = query.Where("sales_order_id = ?", value)
		case "date_from":
			query = query.Where("shipment_date >= ?", value)
		case "date_to":
			query = query.Where("shipment_date <= ?", value)
		}
	}
	return query
}

// GormServiceRepository implements ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service charge by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*logistics.Service, error) {
	var service logistics.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindByShipment finds all service charges attached to a shipment
func (r *GormServiceRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]logistics.Service, error) {
	var services []logistics.Service
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("created_at ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// Save creates or updates a service charge
func (r *GormServiceRepository) Save(ctx context.Context, service *logistics.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

// Delete deletes a service charge
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&logistics.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByServiceSupplier counts service charges billed by a provider
func (r *GormServiceRepository) CountByServiceSupplier(ctx context.Context, serviceSupplierID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&logistics.Service{}).
		Where("service_supplier_id = ?", serviceSupplierID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GormExportDocumentationRepository implements ExportDocumentationRepository using GORM
type GormExportDocumentationRepository struct {
	db *gorm.DB
}

// NewGormExportDocumentationRepository creates a new GormExportDocumentationRepository
func NewGormExportDocumentationRepository(db *gorm.DB) *GormExportDocumentationRepository {
	return &GormExportDocumentationRepository{db: db}
}

// FindByID finds a documentation checklist by its ID
func (r *GormExportDocumentationRepository) FindByID(ctx context.Context, id uuid.UUID) (*logistics.ExportDocumentation, error) {
	var doc logistics.ExportDocumentation
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByShipment finds the documentation checklist for a shipment
func (r *GormExportDocumentationRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) (*logistics.ExportDocumentation, error) {
	var doc logistics.ExportDocumentation
	if err := r.db.WithContext(ctx).First(&doc, "shipment_id = ?", shipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll finds all documentation checklists matching the filter
func (r *GormExportDocumentationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.ExportDocumentation, error) {
	var docs []logistics.ExportDocumentation
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&logistics.ExportDocumentation{}), filter)
	query = applyPagination(query, filter, "created_at DESC")

	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save creates or updates a documentation checklist
func (r *GormExportDocumentationRepository) Save(ctx context.Context, doc *logistics.ExportDocumentation) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// Delete deletes a documentation checklist
func (r *GormExportDocumentationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&logistics.ExportDocumentation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts documentation checklists matching the filter
func (r *GormExportDocumentationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&logistics.ExportDocumentation{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPendingDispatch counts checklists whose documents have not been sent
func (r *GormExportDocumentationRepository) CountPendingDispatch(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&logistics.ExportDocumentation{}).
		Where("dispatch_status = ?", logistics.DispatchPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormExportDocumentationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "shipment_id":
			query = query.Where("shipment_id = ?", value)
		case "dispatch_status":
			query = query.Where("dispatch_status = ?", value)
		}
	}
	return query
}

var _ logistics.ShipmentRepository = (*GormShipmentRepository)(nil)
var _ logistics.ServiceRepository = (*GormServiceRepository)(nil)
var _ logistics.ExportDocumentationRepository = (*GormExportDocumentationRepository)(nil)
