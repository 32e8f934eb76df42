package inventory

import (
	"context"

	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventoryService exposes read access to stock levels. Stock is never
// written through this service; quantities only move when purchases are
// fulfilled and processing operations are posted.
type InventoryService struct {
	rawStockRepo      inventory.RawMaterialStockRepository
	finishedStockRepo inventory.FinishedGoodsStockRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(rawStockRepo inventory.RawMaterialStockRepository, finishedStockRepo inventory.FinishedGoodsStockRepository) *InventoryService {
	return &InventoryService{
		rawStockRepo:      rawStockRepo,
		finishedStockRepo: finishedStockRepo,
	}
}

// GetRawMaterialStock returns the stock row for a raw material
func (s *InventoryService) GetRawMaterialStock(ctx context.Context, rawMaterialID uuid.UUID) (*RawMaterialStockResponse, error) {
	stock, err := s.rawStockRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		return nil, err
	}

	response := ToRawMaterialStockResponse(stock)
	return &response, nil
}

// ListRawMaterialStocks lists raw material stock rows
func (s *InventoryService) ListRawMaterialStocks(ctx context.Context, filter StockListFilter) ([]RawMaterialStockResponse, int64, error) {
	domainFilter := buildFilter(filter)

	stocks, err := s.rawStockRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.rawStockRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToRawMaterialStockResponses(stocks), total, nil
}

// GetFinishedGoodsStock returns the stock row for a finished product
func (s *InventoryService) GetFinishedGoodsStock(ctx context.Context, finishedProductID uuid.UUID) (*FinishedGoodsStockResponse, error) {
	stock, err := s.finishedStockRepo.FindByProduct(ctx, finishedProductID)
	if err != nil {
		return nil, err
	}

	response := ToFinishedGoodsStockResponse(stock)
	return &response, nil
}

// ListFinishedGoodsStocks lists finished goods stock rows
func (s *InventoryService) ListFinishedGoodsStocks(ctx context.Context, filter StockListFilter) ([]FinishedGoodsStockResponse, int64, error) {
	domainFilter := buildFilter(filter)

	stocks, err := s.finishedStockRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.finishedStockRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToFinishedGoodsStockResponses(stocks), total, nil
}

func buildFilter(filter StockListFilter) shared.Filter {
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
	return domainFilter
}
