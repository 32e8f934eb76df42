package catalog

import (
	"context"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RawMaterialRepository defines persistence operations for raw materials
type RawMaterialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RawMaterial, error)
	FindByName(ctx context.Context, name string) (*RawMaterial, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RawMaterial, error)
	Save(ctx context.Context, material *RawMaterial) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// FinishedProductRepository defines persistence operations for finished products
type FinishedProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FinishedProduct, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]FinishedProduct, error)
	FindByType(ctx context.Context, productType ProductType, filter shared.Filter) ([]FinishedProduct, error)
	Save(ctx context.Context, product *FinishedProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
