package trade

import (
	"context"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// SalesOrderService handles export sales order workflows
type SalesOrderService struct {
	orderRepo    trade.SalesOrderRepository
	clientRepo   partner.ClientRepository
	productRepo  catalog.FinishedProductRepository
	shipmentRepo logistics.ShipmentRepository
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	orderRepo trade.SalesOrderRepository,
	clientRepo partner.ClientRepository,
	productRepo catalog.FinishedProductRepository,
	shipmentRepo logistics.ShipmentRepository,
) *SalesOrderService {
	return &SalesOrderService{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		productRepo:  productRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Create creates a pending sales order, optionally with initial item lines
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	existing, err := s.orderRepo.FindByOrderNumber(ctx, req.OrderNumber)
	if err != nil && !shared.IsDomainErrorWithCode(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Sales order with this order number already exists")
	}

	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	order, err := trade.NewSalesOrder(req.OrderNumber, req.ClientID, req.OrderDate, req.AdvancePercent, trade.BalanceTerms(req.BalanceTerms), req.EstimatedBalanceDate, req.Notes)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if _, err := s.productRepo.FindByID(ctx, item.FinishedProductID); err != nil {
			return nil, err
		}
		if _, err := order.AddItem(item.FinishedProductID, item.QuantityKg, item.PricePerKgUSD); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its item lines
func (s *SalesOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *SalesOrderService) List(ctx context.Context, filter SalesOrderListFilter) ([]SalesOrderResponse, int64, error) {
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
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSalesOrderResponses(orders), total, nil
}

// Update updates an order header
func (s *SalesOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	orderNumber := order.OrderNumber
	clientID := order.ClientID
	orderDate := order.OrderDate
	advancePercent := order.AdvancePercent
	balanceTerms := order.BalanceTerms
	estimatedBalanceDate := order.EstimatedBalanceDate
	notes := order.Notes
	if req.OrderNumber != nil {
		if *req.OrderNumber != order.OrderNumber {
			existing, err := s.orderRepo.FindByOrderNumber(ctx, *req.OrderNumber)
			if err != nil && !shared.IsDomainErrorWithCode(err, "NOT_FOUND") {
				return nil, err
			}
			if existing != nil {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Sales order with this order number already exists")
			}
		}
		orderNumber = *req.OrderNumber
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		clientID = *req.ClientID
	}
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}
	if req.AdvancePercent != nil {
		advancePercent = *req.AdvancePercent
	}
	if req.BalanceTerms != nil {
		balanceTerms = trade.BalanceTerms(*req.BalanceTerms)
	}
	if req.EstimatedBalanceDate != nil {
		estimatedBalanceDate = req.EstimatedBalanceDate
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := order.Update(orderNumber, clientID, orderDate, advancePercent, balanceTerms, estimatedBalanceDate, notes); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// AddItem appends a product line to an order
func (s *SalesOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req OrderItemRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, req.FinishedProductID); err != nil {
		return nil, err
	}

	if _, err := order.AddItem(req.FinishedProductID, req.QuantityKg, req.PricePerKgUSD); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Confirm moves a pending order to confirmed
func (s *SalesOrderService) Confirm(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Confirm(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Delete deletes an order. An order with shipments cannot be deleted.
func (s *SalesOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}

	shipments, err := s.shipmentRepo.CountBySalesOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if shipments > 0 {
		return shared.NewDomainError("IN_USE", "Sales order with shipments cannot be deleted")
	}

	return s.orderRepo.Delete(ctx, orderID)
}
