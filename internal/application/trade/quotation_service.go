package trade

import (
	"context"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// QuotationService handles pre-sale quotation workflows
type QuotationService struct {
	quotationRepo trade.QuotationRepository
	clientRepo    partner.ClientRepository
	productRepo   catalog.FinishedProductRepository
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(
	quotationRepo trade.QuotationRepository,
	clientRepo partner.ClientRepository,
	productRepo catalog.FinishedProductRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		productRepo:   productRepo,
	}
}

// Create creates a quotation, optionally attached to a client
func (s *QuotationService) Create(ctx context.Context, req CreateQuotationRequest) (*QuotationResponse, error) {
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *req.ClientID); err != nil {
			return nil, err
		}
	}
	if _, err := s.productRepo.FindByID(ctx, req.FinishedProductID); err != nil {
		return nil, err
	}

	quotation, err := trade.NewQuotation(req.ClientID, req.FinishedProductID, req.QuoteDate, req.QuantityKg, req.TotalCostUSD, req.MarginPercent, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	response := ToQuotationResponse(quotation)
	return &response, nil
}

// GetByID retrieves a quotation by ID
func (s *QuotationService) GetByID(ctx context.Context, quotationID uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	response := ToQuotationResponse(quotation)
	return &response, nil
}

// List retrieves quotations with filtering and pagination
func (s *QuotationService) List(ctx context.Context, filter QuotationListFilter) ([]QuotationResponse, int64, error) {
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
	if filter.ClientID != "" {
		domainFilter.Filters["client_id"] = filter.ClientID
	}
	if filter.Converted != nil {
		domainFilter.Filters["converted"] = *filter.Converted
	}

	quotations, err := s.quotationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.quotationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToQuotationResponses(quotations), total, nil
}

// Update updates an unconverted quotation
func (s *QuotationService) Update(ctx context.Context, quotationID uuid.UUID, req UpdateQuotationRequest) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	clientID := quotation.ClientID
	if req.ClearClient {
		clientID = nil
	} else if req.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		clientID = req.ClientID
	}

	productID := quotation.FinishedProductID
	quoteDate := quotation.QuoteDate
	quantityKg := quotation.QuantityKg
	totalCost := quotation.TotalCostUSD
	marginPercent := quotation.MarginPercent
	notes := quotation.Notes
	if req.FinishedProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.FinishedProductID); err != nil {
			return nil, err
		}
		productID = *req.FinishedProductID
	}
	if req.QuoteDate != nil {
		quoteDate = *req.QuoteDate
	}
	if req.QuantityKg != nil {
		quantityKg = *req.QuantityKg
	}
	if req.TotalCostUSD != nil {
		totalCost = *req.TotalCostUSD
	}
	if req.MarginPercent != nil {
		marginPercent = *req.MarginPercent
	}
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := quotation.Update(clientID, productID, quoteDate, quantityKg, totalCost, marginPercent, notes); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	response := ToQuotationResponse(quotation)
	return &response, nil
}

// MarkConverted flags the quotation as turned into a sales order
func (s *QuotationService) MarkConverted(ctx context.Context, quotationID uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if err := quotation.MarkConverted(); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	response := ToQuotationResponse(quotation)
	return &response, nil
}

// Delete deletes a quotation
func (s *QuotationService) Delete(ctx context.Context, quotationID uuid.UUID) error {
	if _, err := s.quotationRepo.FindByID(ctx, quotationID); err != nil {
		return err
	}

	return s.quotationRepo.Delete(ctx, quotationID)
}
