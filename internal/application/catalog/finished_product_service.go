package catalog

import (
	"context"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// FinishedProductService handles finished product catalog operations
type FinishedProductService struct {
	productRepo   catalog.FinishedProductRepository
	stockRepo     inventory.FinishedGoodsStockRepository
	operationRepo processing.OperationRepository
	orderRepo     trade.SalesOrderRepository
}

// NewFinishedProductService creates a new FinishedProductService
func NewFinishedProductService(
	productRepo catalog.FinishedProductRepository,
	stockRepo inventory.FinishedGoodsStockRepository,
	operationRepo processing.OperationRepository,
	orderRepo trade.SalesOrderRepository,
) *FinishedProductService {
	return &FinishedProductService{
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		operationRepo: operationRepo,
		orderRepo:     orderRepo,
	}
}

// Create creates a finished product together with its empty stock record
func (s *FinishedProductService) Create(ctx context.Context, req CreateFinishedProductRequest) (*FinishedProductResponse, error) {
	product, err := catalog.NewFinishedProduct(req.Name, catalog.ProductType(req.Type), req.Presentation, req.UnitPriceUSD)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	stock, err := inventory.NewFinishedGoodsStock(product.ID)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	response := ToFinishedProductResponse(product)
	return &response, nil
}

// GetByID retrieves a finished product by ID
func (s *FinishedProductService) GetByID(ctx context.Context, productID uuid.UUID) (*FinishedProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToFinishedProductResponse(product)
	return &response, nil
}

// List retrieves a list of finished products with filtering and pagination
func (s *FinishedProductService) List(ctx context.Context, filter FinishedProductListFilter) ([]FinishedProductResponse, int64, error) {
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

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToFinishedProductResponses(products), total, nil
}

// Update updates a finished product
func (s *FinishedProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateFinishedProductRequest) (*FinishedProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	productType := product.Type
	presentation := product.Presentation
	unitPrice := product.UnitPriceUSD
	if req.Name != nil {
		name = *req.Name
	}
	if req.Type != nil {
		productType = catalog.ProductType(*req.Type)
	}
	if req.Presentation != nil {
		presentation = *req.Presentation
	}
	if req.UnitPriceUSD != nil {
		unitPrice = *req.UnitPriceUSD
	}

	if err := product.Update(name, productType, presentation, unitPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToFinishedProductResponse(product)
	return &response, nil
}

// Delete deletes a finished product. A product referenced by processing
// operations or sales order items cannot be deleted.
func (s *FinishedProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}

	operations, err := s.operationRepo.CountByFinishedProduct(ctx, productID)
	if err != nil {
		return err
	}
	if operations > 0 {
		return shared.NewDomainError("IN_USE", "Finished product with processing operations cannot be deleted")
	}

	items, err := s.orderRepo.CountItemsByProduct(ctx, productID)
	if err != nil {
		return err
	}
	if items > 0 {
		return shared.NewDomainError("IN_USE", "Finished product referenced by sales orders cannot be deleted")
	}

	return s.productRepo.Delete(ctx, productID)
}
