package trade

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesOrderRepository defines persistence operations for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	// FindByIDWithItems loads the order together with its item lines.
	FindByIDWithItems(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)
	// FindRecent returns the most recently created orders with their items.
	FindRecent(ctx context.Context, limit int) ([]SalesOrder, error)
	Save(ctx context.Context, order *SalesOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
	CountItemsByProduct(ctx context.Context, finishedProductID uuid.UUID) (int64, error)
}

// QuotationRepository defines persistence operations for quotations
type QuotationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Quotation, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Quotation, error)
	Save(ctx context.Context, quotation *Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// DetachClient clears the client reference on every quotation that
	// points at the given client.
	DetachClient(ctx context.Context, clientID uuid.UUID) error
}
