package partner

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SupplierRepository defines persistence operations for raw-material suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ServiceSupplierRepository defines persistence operations for logistics providers
type ServiceSupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceSupplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ServiceSupplier, error)
	FindByType(ctx context.Context, supplierType ServiceSupplierType, filter shared.Filter) ([]ServiceSupplier, error)
	Save(ctx context.Context, supplier *ServiceSupplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
