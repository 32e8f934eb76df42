package logistics

import (
	"time"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Shipment DTOs
// =============================================================================

// CreateShipmentRequest represents a request to register a shipment
type CreateShipmentRequest struct {
	SalesOrderID uuid.UUID `json:"sales_order_id" binding:"required"`
	ShipmentDate time.Time `json:"shipment_date" binding:"required" time_format:"2006-01-02"`
	Notes        string    `json:"notes"`
}

// UpdateShipmentRequest represents a request to update a shipment header
type UpdateShipmentRequest struct {
	SalesOrderID *uuid.UUID `json:"sales_order_id"`
	ShipmentDate *time.Time `json:"shipment_date" time_format:"2006-01-02"`
	Notes        *string    `json:"notes"`
}

// ShipmentResponse represents a shipment in API responses
type ShipmentResponse struct {
	ID           uuid.UUID         `json:"id"`
	SalesOrderID uuid.UUID         `json:"sales_order_id"`
	ShipmentDate time.Time         `json:"shipment_date"`
	Notes        string            `json:"notes"`
	Services     []ServiceResponse `json:"services,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Version      int               `json:"version"`
}

// ShipmentListFilter represents filter options for shipment list
type ShipmentListFilter struct {
	SalesOrderID string `form:"sales_order_id" binding:"omitempty,uuid"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToShipmentResponse converts a domain Shipment with its services
func ToShipmentResponse(s *logistics.Shipment) ShipmentResponse {
	services := make([]ServiceResponse, len(s.Services))
	for i := range s.Services {
		services[i] = ToServiceResponse(&s.Services[i])
	}
	return ShipmentResponse{
		ID:           s.ID,
		SalesOrderID: s.SalesOrderID,
		ShipmentDate: s.ShipmentDate,
		Notes:        s.Notes,
		Services:     services,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Version:      s.Version,
	}
}

// ToShipmentResponses converts a slice of domain Shipments
func ToShipmentResponses(shipments []logistics.Shipment) []ShipmentResponse {
	responses := make([]ShipmentResponse, len(shipments))
	for i := range shipments {
		responses[i] = ToShipmentResponse(&shipments[i])
	}
	return responses
}

// =============================================================================
// Logistics service DTOs
// =============================================================================

// AddServiceRequest represents a request to attach a service charge
type AddServiceRequest struct {
	ServiceSupplierID uuid.UUID       `json:"service_supplier_id" binding:"required"`
	ReferenceDocument string          `json:"reference_document" binding:"required,min=1,max=100"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Currency          string          `json:"currency" binding:"required,oneof=USD CLP"`
	DueDate           time.Time       `json:"due_date" binding:"required" time_format:"2006-01-02"`
}

// ServiceResponse represents a logistics service charge in API responses
type ServiceResponse struct {
	ID                uuid.UUID       `json:"id"`
	ShipmentID        uuid.UUID       `json:"shipment_id"`
	ServiceSupplierID uuid.UUID       `json:"service_supplier_id"`
	ReferenceDocument string          `json:"reference_document"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	DueDate           time.Time       `json:"due_date"`
	PaymentStatus     string          `json:"payment_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToServiceResponse converts a domain Service
func ToServiceResponse(s *logistics.Service) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		ShipmentID:        s.ShipmentID,
		ServiceSupplierID: s.ServiceSupplierID,
		ReferenceDocument: s.ReferenceDocument,
		Amount:            s.Amount,
		Currency:          string(s.Currency),
		DueDate:           s.DueDate,
		PaymentStatus:     string(s.PaymentStatus),
		CreatedAt:         s.CreatedAt,
	}
}

// =============================================================================
// Export documentation DTOs
// =============================================================================

// CreateDocumentationRequest represents a request to open a document checklist
type CreateDocumentationRequest struct {
	ShipmentID           uuid.UUID `json:"shipment_id" binding:"required"`
	EstimatedArrivalDate time.Time `json:"estimated_arrival_date" binding:"required" time_format:"2006-01-02"`
	CourierDeadline      time.Time `json:"courier_deadline" binding:"required" time_format:"2006-01-02"`
	OtherCertificates    string    `json:"other_certificates"`
}

// UpdateDocumentationRequest represents a request to update the checklist
type UpdateDocumentationRequest struct {
	CustomsDeclaration   *bool      `json:"customs_declaration"`
	DispatchGuide        *bool      `json:"dispatch_guide"`
	PackingList          *bool      `json:"packing_list"`
	CertificateOfOrigin  *bool      `json:"certificate_of_origin"`
	OtherCertificates    *string    `json:"other_certificates"`
	EstimatedArrivalDate *time.Time `json:"estimated_arrival_date" time_format:"2006-01-02"`
	CourierDeadline      *time.Time `json:"courier_deadline" time_format:"2006-01-02"`
}

// DocumentationResponse represents a document checklist in API responses
type DocumentationResponse struct {
	ID                   uuid.UUID `json:"id"`
	ShipmentID           uuid.UUID `json:"shipment_id"`
	CustomsDeclaration   bool      `json:"customs_declaration"`
	DispatchGuide        bool      `json:"dispatch_guide"`
	PackingList          bool      `json:"packing_list"`
	CertificateOfOrigin  bool      `json:"certificate_of_origin"`
	OtherCertificates    string    `json:"other_certificates"`
	EstimatedArrivalDate time.Time `json:"estimated_arrival_date"`
	CourierDeadline      time.Time `json:"courier_deadline"`
	DispatchStatus       string    `json:"dispatch_status"`
	Complete             bool      `json:"complete"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
	Version              int       `json:"version"`
}

// DocumentationListFilter represents filter options for documentation list
type DocumentationListFilter struct {
	DispatchStatus string `form:"dispatch_status" binding:"omitempty,oneof=pending sent"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy        string `form:"order_by"`
	OrderDir       string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToDocumentationResponse converts a domain ExportDocumentation
func ToDocumentationResponse(d *logistics.ExportDocumentation) DocumentationResponse {
	return DocumentationResponse{
		ID:                   d.ID,
		ShipmentID:           d.ShipmentID,
		CustomsDeclaration:   d.CustomsDeclaration,
		DispatchGuide:        d.DispatchGuide,
		PackingList:          d.PackingList,
		CertificateOfOrigin:  d.CertificateOfOrigin,
		OtherCertificates:    d.OtherCertificates,
		EstimatedArrivalDate: d.EstimatedArrivalDate,
		CourierDeadline:      d.CourierDeadline,
		DispatchStatus:       string(d.DispatchStatus),
		Complete:             d.IsComplete(),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
		Version:              d.Version,
	}
}

// ToDocumentationResponses converts a slice of domain ExportDocumentations
func ToDocumentationResponses(docs []logistics.ExportDocumentation) []DocumentationResponse {
	responses := make([]DocumentationResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentationResponse(&docs[i])
	}
	return responses
}
