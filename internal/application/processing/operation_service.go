package processing

import (
	"context"

	appinventory "github.com/avellanos/backend/internal/application/inventory"
	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OperationService handles processing operation workflows
type OperationService struct {
	operationRepo processing.OperationRepository
	costRepo      processing.CostRepository
	materialRepo  catalog.RawMaterialRepository
	productRepo   catalog.FinishedProductRepository
	txScope       appinventory.TransactionScope
}

// NewOperationService creates a new OperationService
func NewOperationService(
	operationRepo processing.OperationRepository,
	costRepo processing.CostRepository,
	materialRepo catalog.RawMaterialRepository,
	productRepo catalog.FinishedProductRepository,
	txScope appinventory.TransactionScope,
) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		costRepo:      costRepo,
		materialRepo:  materialRepo,
		productRepo:   productRepo,
		txScope:       txScope,
	}
}

// Create records a new unposted processing operation
func (s *OperationService) Create(ctx context.Context, req CreateOperationRequest) (*OperationResponse, error) {
	if _, err := s.materialRepo.FindByID(ctx, req.RawMaterialID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.FinishedProductID); err != nil {
		return nil, err
	}

	operation, err := processing.NewOperation(req.OperationDate, req.RawMaterialID, req.FinishedProductID, req.InputKg, req.YieldPercent, req.OutputKg, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.operationRepo.Save(ctx, operation); err != nil {
		return nil, err
	}

	response := ToOperationResponse(operation)
	return &response, nil
}

// GetByID retrieves an operation with its cost lines
func (s *OperationService) GetByID(ctx context.Context, operationID uuid.UUID) (*OperationResponse, error) {
	operation, err := s.operationRepo.FindByIDWithCosts(ctx, operationID)
	if err != nil {
		return nil, err
	}

	response := ToOperationResponse(operation)
	return &response, nil
}

// List retrieves operations with filtering and pagination
func (s *OperationService) List(ctx context.Context, filter OperationListFilter) ([]OperationResponse, int64, error) {
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
	if filter.RawMaterialID != "" {
		domainFilter.Filters["raw_material_id"] = filter.RawMaterialID
	}
	if filter.FinishedProductID != "" {
		domainFilter.Filters["finished_product_id"] = filter.FinishedProductID
	}
	if filter.Posted != nil {
		domainFilter.Filters["posted"] = *filter.Posted
	}

	operations, err := s.operationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.operationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOperationResponses(operations), total, nil
}

// Update updates an unposted operation
func (s *OperationService) Update(ctx context.Context, operationID uuid.UUID, req UpdateOperationRequest) (*OperationResponse, error) {
	operation, err := s.operationRepo.FindByIDWithCosts(ctx, operationID)
	if err != nil {
		return nil, err
	}

	operationDate := operation.OperationDate
	materialID := operation.RawMaterialID
	productID := operation.FinishedProductID
	inputKg := operation.InputKg
	yieldPercent := operation.YieldPercent
	outputKg := operation.OutputKg
	notes := operation.Notes
	if req.OperationDate != nil {
		operationDate = *req.OperationDate
	}
	if req.RawMaterialID != nil {
		if _, err := s.materialRepo.FindByID(ctx, *req.RawMaterialID); err != nil {
			return nil, err
		}
		materialID = *req.RawMaterialID
	}
	if req.FinishedProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.FinishedProductID); err != nil {
			return nil, err
		}
		productID = *req.FinishedProductID
	}
	if req.InputKg != nil {
		inputKg = *req.InputKg
	}
	if req.YieldPercent != nil {
		yieldPercent = req.YieldPercent
	}
	if req.OutputKg != nil {
		outputKg = *req.OutputKg
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := operation.Update(operationDate, materialID, productID, inputKg, yieldPercent, outputKg, notes); err != nil {
		return nil, err
	}

	if err := s.operationRepo.Save(ctx, operation); err != nil {
		return nil, err
	}

	response := ToOperationResponse(operation)
	return &response, nil
}

// AddCost attaches a tolling cost line to an unposted operation
func (s *OperationService) AddCost(ctx context.Context, operationID uuid.UUID, req AddCostRequest) (*CostResponse, error) {
	operation, err := s.operationRepo.FindByIDWithCosts(ctx, operationID)
	if err != nil {
		return nil, err
	}

	cost, err := operation.AddCost(req.Concept, req.Amount, shared.Currency(req.Currency), req.CostDate)
	if err != nil {
		return nil, err
	}

	if err := s.costRepo.Save(ctx, cost); err != nil {
		return nil, err
	}
	if err := s.operationRepo.Save(ctx, operation); err != nil {
		return nil, err
	}

	response := ToCostResponse(cost)
	return &response, nil
}

// RemoveCost deletes a tolling cost line from an unposted operation
func (s *OperationService) RemoveCost(ctx context.Context, operationID, costID uuid.UUID) error {
	operation, err := s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		return err
	}
	if operation.Posted {
		return shared.NewDomainError("INVALID_STATE", "Posted operation cannot be modified")
	}

	cost, err := s.costRepo.FindByID(ctx, costID)
	if err != nil {
		return err
	}
	if cost.OperationID != operationID {
		return shared.ErrNotFound
	}

	return s.costRepo.Delete(ctx, costID)
}

// Post applies the operation to inventory. The input quantity is debited
// from raw material stock and the output quantity is credited to finished
// goods stock in one transaction. Version checks on the operation and both
// stock rows make the posting exactly-once: if stock is insufficient or the
// operation was already posted, nothing moves.
func (s *OperationService) Post(ctx context.Context, operationID uuid.UUID) (*OperationResponse, error) {
	var response OperationResponse
	err := s.txScope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		operation, err := repos.OperationRepo().FindByIDWithCosts(ctx, operationID)
		if err != nil {
			return err
		}

		if err := operation.Post(); err != nil {
			return err
		}

		rawStock, err := repos.RawMaterialStockRepo().FindByRawMaterial(ctx, operation.RawMaterialID)
		if err != nil {
			return err
		}
		if err := rawStock.Debit(operation.InputKg); err != nil {
			return err
		}

		finishedStock, err := repos.FinishedGoodsStockRepo().FindByProduct(ctx, operation.FinishedProductID)
		if err != nil {
			return err
		}
		if err := finishedStock.Credit(operation.OutputKg); err != nil {
			return err
		}

		if err := repos.OperationRepo().SaveWithVersion(ctx, operation); err != nil {
			return err
		}
		if err := repos.RawMaterialStockRepo().SaveWithVersion(ctx, rawStock); err != nil {
			return err
		}
		if err := repos.FinishedGoodsStockRepo().SaveWithVersion(ctx, finishedStock); err != nil {
			return err
		}

		response = ToOperationResponse(operation)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete deletes an unposted operation together with its cost lines
func (s *OperationService) Delete(ctx context.Context, operationID uuid.UUID) error {
	operation, err := s.operationRepo.FindByID(ctx, operationID)
	if err != nil {
		return err
	}

	if operation.Posted {
		return shared.NewDomainError("INVALID_STATE", "Posted operation cannot be deleted")
	}

	return s.operationRepo.Delete(ctx, operationID)
}
