package partner

import (
	"context"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceSupplierService handles logistics service supplier operations
type ServiceSupplierService struct {
	serviceSupplierRepo partner.ServiceSupplierRepository
	serviceRepo         logistics.ServiceRepository
}

// NewServiceSupplierService creates a new ServiceSupplierService
func NewServiceSupplierService(serviceSupplierRepo partner.ServiceSupplierRepository, serviceRepo logistics.ServiceRepository) *ServiceSupplierService {
	return &ServiceSupplierService{
		serviceSupplierRepo: serviceSupplierRepo,
		serviceRepo:         serviceRepo,
	}
}

// Create creates a new service supplier
func (s *ServiceSupplierService) Create(ctx context.Context, req CreateServiceSupplierRequest) (*ServiceSupplierResponse, error) {
	supplier, err := partner.NewServiceSupplier(req.Name, partner.ServiceSupplierType(req.Type), req.ContactName)
	if err != nil {
		return nil, err
	}

	if err := s.serviceSupplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToServiceSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a service supplier by ID
func (s *ServiceSupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*ServiceSupplierResponse, error) {
	supplier, err := s.serviceSupplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToServiceSupplierResponse(supplier)
	return &response, nil
}

// List retrieves a list of service suppliers with filtering and pagination
func (s *ServiceSupplierService) List(ctx context.Context, filter ServiceSupplierListFilter) ([]ServiceSupplierResponse, int64, error) {
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
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	suppliers, err := s.serviceSupplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.serviceSupplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToServiceSupplierResponses(suppliers), total, nil
}

// Update updates a service supplier
func (s *ServiceSupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateServiceSupplierRequest) (*ServiceSupplierResponse, error) {
	supplier, err := s.serviceSupplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	name := supplier.Name
	supplierType := supplier.Type
	contactName := supplier.ContactName
	if req.Name != nil {
		name = *req.Name
	}
	if req.Type != nil {
		supplierType = partner.ServiceSupplierType(*req.Type)
	}
	if req.ContactName != nil {
		contactName = *req.ContactName
	}

	if err := supplier.Update(name, supplierType, contactName); err != nil {
		return nil, err
	}

	if err := s.serviceSupplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToServiceSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a service supplier. A supplier referenced by logistics
// service charges cannot be deleted.
func (s *ServiceSupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	if _, err := s.serviceSupplierRepo.FindByID(ctx, supplierID); err != nil {
		return err
	}

	services, err := s.serviceRepo.CountByServiceSupplier(ctx, supplierID)
	if err != nil {
		return err
	}
	if services > 0 {
		return shared.NewDomainError("IN_USE", "Service supplier with logistics charges cannot be deleted")
	}

	return s.serviceSupplierRepo.Delete(ctx, supplierID)
}
