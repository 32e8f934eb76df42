package logistics

import (
	"context"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShipmentRepository defines persistence operations for shipments
type ShipmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	// FindByIDWithServices loads the shipment together with its service charges.
	FindByIDWithServices(ctx context.Context, id uuid.UUID) (*Shipment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Shipment, error)
	FindBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) ([]Shipment, error)
	Save(ctx context.Context, shipment *Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// CountInWindow counts shipments whose date falls inside [from, to],
	// both bounds inclusive.
	CountInWindow(ctx context.Context, from, to time.Time) (int64, error)
	CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error)
}

// ServiceRepository defines persistence operations for logistics service charges
type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]Service, error)
	Save(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByServiceSupplier(ctx context.Context, serviceSupplierID uuid.UUID) (int64, error)
}

// ExportDocumentationRepository defines persistence operations for export
// document checklists
type ExportDocumentationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExportDocumentation, error)
	FindByShipment(ctx context.Context, shipmentID uuid.UUID) (*ExportDocumentation, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ExportDocumentation, error)
	Save(ctx context.Context, doc *ExportDocumentation) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountPendingDispatch(ctx context.Context) (int64, error)
}
