package catalog

import (
	"context"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RawMaterialService handles raw material catalog operations
type RawMaterialService struct {
	materialRepo  catalog.RawMaterialRepository
	stockRepo     inventory.RawMaterialStockRepository
	purchaseRepo  procurement.PurchaseRepository
	operationRepo processing.OperationRepository
}

// NewRawMaterialService creates a new RawMaterialService
func NewRawMaterialService(
	materialRepo catalog.RawMaterialRepository,
	stockRepo inventory.RawMaterialStockRepository,
	purchaseRepo procurement.PurchaseRepository,
	operationRepo processing.OperationRepository,
) *RawMaterialService {
	return &RawMaterialService{
		materialRepo:  materialRepo,
		stockRepo:     stockRepo,
		purchaseRepo:  purchaseRepo,
		operationRepo: operationRepo,
	}
}

// Create creates a raw material together with its empty stock record
func (s *RawMaterialService) Create(ctx context.Context, req CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	exists, err := s.materialRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Raw material with this name already exists")
	}

	material, err := catalog.NewRawMaterial(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	stock, err := inventory.NewRawMaterialStock(material.ID)
	if err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// GetByID retrieves a raw material by ID
func (s *RawMaterialService) GetByID(ctx context.Context, materialID uuid.UUID) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// List retrieves a list of raw materials with filtering and pagination
func (s *RawMaterialService) List(ctx context.Context, filter RawMaterialListFilter) ([]RawMaterialResponse, int64, error) {
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

	materials, err := s.materialRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.materialRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToRawMaterialResponses(materials), total, nil
}

// Update renames a raw material
func (s *RawMaterialService) Update(ctx context.Context, materialID uuid.UUID, req UpdateRawMaterialRequest) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	if req.Name != material.Name {
		exists, err := s.materialRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Raw material with this name already exists")
		}
	}

	if err := material.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// Delete deletes a raw material. A material referenced by purchases or
// processing operations cannot be deleted.
func (s *RawMaterialService) Delete(ctx context.Context, materialID uuid.UUID) error {
	if _, err := s.materialRepo.FindByID(ctx, materialID); err != nil {
		return err
	}

	purchases, err := s.purchaseRepo.CountByRawMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if purchases > 0 {
		return shared.NewDomainError("IN_USE", "Raw material with purchase records cannot be deleted")
	}

	operations, err := s.operationRepo.CountByRawMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if operations > 0 {
		return shared.NewDomainError("IN_USE", "Raw material with processing operations cannot be deleted")
	}

	return s.materialRepo.Delete(ctx, materialID)
}
