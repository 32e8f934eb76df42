package processing

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OperationRepository defines persistence operations for processing operations
type OperationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Operation, error)
	// FindByIDWithCosts loads the operation together with its cost lines.
	FindByIDWithCosts(ctx context.Context, id uuid.UUID) (*Operation, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Operation, error)
	Save(ctx context.Context, operation *Operation) error
	SaveWithVersion(ctx context.Context, operation *Operation) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountUnposted(ctx context.Context) (int64, error)
	CountByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (int64, error)
	CountByFinishedProduct(ctx context.Context, finishedProductID uuid.UUID) (int64, error)
}

// CostRepository defines persistence operations for tolling cost lines
type CostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cost, error)
	FindByOperation(ctx context.Context, operationID uuid.UUID) ([]Cost, error)
	Save(ctx context.Context, cost *Cost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
