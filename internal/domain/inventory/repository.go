package inventory

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RawMaterialStockRepository defines persistence operations for raw material stock
type RawMaterialStockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RawMaterialStock, error)
	FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*RawMaterialStock, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RawMaterialStock, error)
	Save(ctx context.Context, stock *RawMaterialStock) error
	// SaveWithVersion persists the stock only if the stored version matches
	// the aggregate's previous version. Returns ErrConcurrencyConflict on a
	// stale write.
	SaveWithVersion(ctx context.Context, stock *RawMaterialStock) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// FinishedGoodsStockRepository defines persistence operations for finished goods stock
type FinishedGoodsStockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FinishedGoodsStock, error)
	FindByProduct(ctx context.Context, finishedProductID uuid.UUID) (*FinishedGoodsStock, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]FinishedGoodsStock, error)
	Save(ctx context.Context, stock *FinishedGoodsStock) error
	SaveWithVersion(ctx context.Context, stock *FinishedGoodsStock) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// CountBelowThreshold counts products whose on-hand quantity is under
	// the low-stock alert threshold.
	CountBelowThreshold(ctx context.Context) (int64, error)
}
