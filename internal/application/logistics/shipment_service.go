package logistics

import (
	"context"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// ShipmentService handles shipment and service charge workflows
type ShipmentService struct {
	shipmentRepo        logistics.ShipmentRepository
	serviceRepo         logistics.ServiceRepository
	orderRepo           trade.SalesOrderRepository
	serviceSupplierRepo partner.ServiceSupplierRepository
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	shipmentRepo logistics.ShipmentRepository,
	serviceRepo logistics.ServiceRepository,
	orderRepo trade.SalesOrderRepository,
	serviceSupplierRepo partner.ServiceSupplierRepository,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo:        shipmentRepo,
		serviceRepo:         serviceRepo,
		orderRepo:           orderRepo,
		serviceSupplierRepo: serviceSupplierRepo,
	}
}

// Create registers a shipment for a confirmed sales order
func (s *ShipmentService) Create(ctx context.Context, req CreateShipmentRequest) (*ShipmentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.SalesOrderID)
	if err != nil {
		return nil, err
	}
	if order.IsPending() {
		return nil, shared.NewDomainError("INVALID_STATE", "Shipments require a confirmed sales order")
	}

	shipment, err := logistics.NewShipment(req.SalesOrderID, req.ShipmentDate, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// GetByID retrieves a shipment with its service charges
func (s *ShipmentService) GetByID(ctx context.Context, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByIDWithServices(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// List retrieves shipments with filtering and pagination
func (s *ShipmentService) List(ctx context.Context, filter ShipmentListFilter) ([]ShipmentResponse, int64, error) {
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
	if filter.SalesOrderID != "" {
		domainFilter.Filters["sales_order_id"] = filter.SalesOrderID
	}

	shipments, err := s.shipmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.shipmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToShipmentResponses(shipments), total, nil
}

// Update updates a shipment header
func (s *ShipmentService) Update(ctx context.Context, shipmentID uuid.UUID, req UpdateShipmentRequest) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByIDWithServices(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	salesOrderID := shipment.SalesOrderID
	shipmentDate := shipment.ShipmentDate
	notes := shipment.Notes
	if req.SalesOrderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *req.SalesOrderID); err != nil {
			return nil, err
		}
		salesOrderID = *req.SalesOrderID
	}
	if req.ShipmentDate != nil {
		shipmentDate = *req.ShipmentDate
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := shipment.Update(salesOrderID, shipmentDate, notes); err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Save(ctx, shipment); err != nil {
		return nil, err
	}

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// AddService attaches a service charge from a logistics supplier
func (s *ShipmentService) AddService(ctx context.Context, shipmentID uuid.UUID, req AddServiceRequest) (*ServiceResponse, error) {
	shipment, err := s.shipmentRepo.FindByIDWithServices(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.serviceSupplierRepo.FindByID(ctx, req.ServiceSupplierID); err != nil {
		return nil, err
	}

	service, err := shipment.AddService(req.ServiceSupplierID, req.ReferenceDocument, req.Amount, shared.Currency(req.Currency), req.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// MarkServicePaid settles a service charge
func (s *ShipmentService) MarkServicePaid(ctx context.Context, shipmentID, serviceID uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.ShipmentID != shipmentID {
		return nil, shared.ErrNotFound
	}

	if err := service.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// RemoveService deletes an unpaid service charge
func (s *ShipmentService) RemoveService(ctx context.Context, shipmentID, serviceID uuid.UUID) error {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if service.ShipmentID != shipmentID {
		return shared.ErrNotFound
	}
	if service.PaymentStatus == logistics.PaymentPaid {
		return shared.NewDomainError("INVALID_STATE", "Paid service charge cannot be removed")
	}

	return s.serviceRepo.Delete(ctx, serviceID)
}

// Delete deletes a shipment together with its service charges and
// document checklist
func (s *ShipmentService) Delete(ctx context.Context, shipmentID uuid.UUID) error {
	if _, err := s.shipmentRepo.FindByID(ctx, shipmentID); err != nil {
		return err
	}

	return s.shipmentRepo.Delete(ctx, shipmentID)
}
