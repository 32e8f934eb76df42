package partner

import (
	"context"

	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles raw material supplier operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	purchaseRepo procurement.PurchaseRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, purchaseRepo procurement.PurchaseRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Region, req.ContactName, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves a list of suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Region != "" {
		domainFilter.Filters["region"] = filter.Region
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	name := supplier.Name
	region := supplier.Region
	contactName := supplier.ContactName
	email := supplier.Email
	phone := supplier.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.Region != nil {
		region = *req.Region
	}
	if req.ContactName != nil {
		contactName = *req.ContactName
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}

	if err := supplier.Update(name, region, contactName, email, phone); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier. A supplier with purchase records cannot be deleted.
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}

	purchases, err := s.purchaseRepo.CountBySupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	if purchases > 0 {
		return shared.NewDomainError("IN_USE", "Supplier with purchase records cannot be deleted")
	}

	return s.supplierRepo.Delete(ctx, supplierID)
}
