package procurement

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseRepository defines persistence operations for purchases
type PurchaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, error)
	Save(ctx context.Context, purchase *Purchase) error
	// SaveWithVersion persists the purchase only if the stored version matches
	// the aggregate's previous version.
	SaveWithVersion(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
	CountByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (int64, error)
}
