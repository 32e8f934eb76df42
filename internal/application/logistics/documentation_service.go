package logistics

import (
	"context"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentationService handles export document checklists
type DocumentationService struct {
	docRepo      logistics.ExportDocumentationRepository
	shipmentRepo logistics.ShipmentRepository
}

// NewDocumentationService creates a new DocumentationService
func NewDocumentationService(docRepo logistics.ExportDocumentationRepository, shipmentRepo logistics.ShipmentRepository) *DocumentationService {
	return &DocumentationService{
		docRepo:      docRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Create opens a document checklist for a shipment. A shipment carries at
// most one checklist.
func (s *DocumentationService) Create(ctx context.Context, req CreateDocumentationRequest) (*DocumentationResponse, error) {
	if _, err := s.shipmentRepo.FindByID(ctx, req.ShipmentID); err != nil {
		return nil, err
	}

	existing, err := s.docRepo.FindByShipment(ctx, req.ShipmentID)
	if err != nil && !shared.IsDomainErrorWithCode(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shipment already has a document checklist")
	}

	doc, err := logistics.NewExportDocumentation(req.ShipmentID, req.EstimatedArrivalDate, req.CourierDeadline, req.OtherCertificates)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentationResponse(doc)
	return &response, nil
}

// GetByID retrieves a document checklist by ID
func (s *DocumentationService) GetByID(ctx context.Context, docID uuid.UUID) (*DocumentationResponse, error) {
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	response := ToDocumentationResponse(doc)
	return &response, nil
}

// GetByShipment retrieves the checklist attached to a shipment
func (s *DocumentationService) GetByShipment(ctx context.Context, shipmentID uuid.UUID) (*DocumentationResponse, error) {
	doc, err := s.docRepo.FindByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	response := ToDocumentationResponse(doc)
	return &response, nil
}

// List retrieves document checklists with filtering and pagination
func (s *DocumentationService) List(ctx context.Context, filter DocumentationListFilter) ([]DocumentationResponse, int64, error) {
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
	if filter.DispatchStatus != "" {
		domainFilter.Filters["dispatch_status"] = filter.DispatchStatus
	}

	docs, err := s.docRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.docRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToDocumentationResponses(docs), total, nil
}

// Update updates the checklist flags and dates
func (s *DocumentationService) Update(ctx context.Context, docID uuid.UUID, req UpdateDocumentationRequest) (*DocumentationResponse, error) {
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	customs := doc.CustomsDeclaration
	dispatchGuide := doc.DispatchGuide
	packingList := doc.PackingList
	certOrigin := doc.CertificateOfOrigin
	otherCerts := doc.OtherCertificates
	if req.CustomsDeclaration != nil {
		customs = *req.CustomsDeclaration
	}
	if req.DispatchGuide != nil {
		dispatchGuide = *req.DispatchGuide
	}
	if req.PackingList != nil {
		packingList = *req.PackingList
	}
	if req.CertificateOfOrigin != nil {
		certOrigin = *req.CertificateOfOrigin
	}
	if req.OtherCertificates != nil {
		otherCerts = *req.OtherCertificates
	}
	doc.UpdateChecklist(customs, dispatchGuide, packingList, certOrigin, otherCerts)

	if req.EstimatedArrivalDate != nil || req.CourierDeadline != nil {
		arrival := doc.EstimatedArrivalDate
		deadline := doc.CourierDeadline
		if req.EstimatedArrivalDate != nil {
			arrival = *req.EstimatedArrivalDate
		}
		if req.CourierDeadline != nil {
			deadline = *req.CourierDeadline
		}
		if err := doc.UpdateDates(arrival, deadline); err != nil {
			return nil, err
		}
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentationResponse(doc)
	return &response, nil
}

// MarkSent records that the complete document set went out by courier
func (s *DocumentationService) MarkSent(ctx context.Context, docID uuid.UUID) (*DocumentationResponse, error) {
	doc, err := s.docRepo.FindByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if err := doc.MarkSent(); err != nil {
		return nil, err
	}

	if err := s.docRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentationResponse(doc)
	return &response, nil
}

// Delete deletes a document checklist
func (s *DocumentationService) Delete(ctx context.Context, docID uuid.UUID) error {
	if _, err := s.docRepo.FindByID(ctx, docID); err != nil {
		return err
	}

	return s.docRepo.Delete(ctx, docID)
}
