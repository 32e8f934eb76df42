package procurement

import (
	"context"

	appinventory "github.com/avellanos/backend/internal/application/inventory"
	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseService handles raw material purchase operations
type PurchaseService struct {
	purchaseRepo procurement.PurchaseRepository
	supplierRepo partner.SupplierRepository
	materialRepo catalog.RawMaterialRepository
	txScope      appinventory.TransactionScope
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(
	purchaseRepo procurement.PurchaseRepository,
	supplierRepo partner.SupplierRepository,
	materialRepo catalog.RawMaterialRepository,
	txScope appinventory.TransactionScope,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
		txScope:      txScope,
	}
}

// Create records a new unfulfilled purchase
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*PurchaseResponse, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.materialRepo.FindByID(ctx, req.RawMaterialID); err != nil {
		return nil, err
	}

	purchase, err := procurement.NewPurchase(req.SupplierID, req.RawMaterialID, req.PurchaseDate, req.QuantityKg, req.PricePerKg, shared.Currency(req.Currency), req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// GetByID retrieves a purchase by ID
func (s *PurchaseService) GetByID(ctx context.Context, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// List retrieves purchases with filtering and pagination
func (s *PurchaseService) List(ctx context.Context, filter PurchaseListFilter) ([]PurchaseResponse, int64, error) {
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
	if filter.SupplierID != "" {
		domainFilter.Filters["supplier_id"] = filter.SupplierID
	}
	if filter.RawMaterialID != "" {
		domainFilter.Filters["raw_material_id"] = filter.RawMaterialID
	}
	if filter.Fulfilled != nil {
		domainFilter.Filters["fulfilled"] = *filter.Fulfilled
	}

	purchases, err := s.purchaseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.purchaseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseResponses(purchases), total, nil
}

// Update updates an unfulfilled purchase
func (s *PurchaseService) Update(ctx context.Context, purchaseID uuid.UUID, req UpdatePurchaseRequest) (*PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	supplierID := purchase.SupplierID
	materialID := purchase.RawMaterialID
	purchaseDate := purchase.PurchaseDate
	quantityKg := purchase.QuantityKg
	pricePerKg := purchase.PricePerKg
	currency := purchase.Currency
	notes := purchase.Notes
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
		supplierID = *req.SupplierID
	}
	if req.RawMaterialID != nil {
		if _, err := s.materialRepo.FindByID(ctx, *req.RawMaterialID); err != nil {
			return nil, err
		}
		materialID = *req.RawMaterialID
	}
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}
	if req.QuantityKg != nil {
		quantityKg = *req.QuantityKg
	}
	if req.PricePerKg != nil {
		pricePerKg = *req.PricePerKg
	}
	if req.Currency != nil {
		currency = shared.Currency(*req.Currency)
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := purchase.Update(supplierID, materialID, purchaseDate, quantityKg, pricePerKg, currency, notes); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}

	response := ToPurchaseResponse(purchase)
	return &response, nil
}

// Fulfill marks the purchase as received and credits its quantity into raw
// material stock. Both writes happen in one transaction and the purchase
// row is guarded with an optimistic version check, so a purchase can be
// fulfilled exactly once even under concurrent requests.
func (s *PurchaseService) Fulfill(ctx context.Context, purchaseID uuid.UUID) (*PurchaseResponse, error) {
	var response PurchaseResponse
	err := s.txScope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		purchase, err := repos.PurchaseRepo().FindByID(ctx, purchaseID)
		if err != nil {
			return err
		}

		if err := purchase.Fulfill(); err != nil {
			return err
		}

		stock, err := repos.RawMaterialStockRepo().FindByRawMaterial(ctx, purchase.RawMaterialID)
		if err != nil {
			return err
		}
		if err := stock.Credit(purchase.QuantityKg); err != nil {
			return err
		}

		if err := repos.PurchaseRepo().SaveWithVersion(ctx, purchase); err != nil {
			return err
		}
		if err := repos.RawMaterialStockRepo().SaveWithVersion(ctx, stock); err != nil {
			return err
		}

		response = ToPurchaseResponse(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete deletes an unfulfilled purchase. Fulfilled purchases stay on file
// because their quantity already moved into stock.
func (s *PurchaseService) Delete(ctx context.Context, purchaseID uuid.UUID) error {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return err
	}

	if purchase.Fulfilled {
		return shared.NewDomainError("INVALID_STATE", "Fulfilled purchase cannot be deleted")
	}

	return s.purchaseRepo.Delete(ctx, purchaseID)
}
