package persistence

import (
	"context"

	appinventory "github.com/avellanos/backend/internal/application/inventory"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/procurement"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// Every repository handed to the executed function is bound to the same
// database transaction, so a stock movement and its source document commit
// or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories bound to a single
// GORM transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// PurchaseRepo returns the purchase repository scoped to the transaction
func (r *gormTransactionalRepositories) PurchaseRepo() procurement.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// OperationRepo returns the operation repository scoped to the transaction
func (r *gormTransactionalRepositories) OperationRepo() processing.OperationRepository {
	return NewGormOperationRepository(r.tx)
}

// RawMaterialStockRepo returns the raw material stock repository scoped to the transaction
func (r *gormTransactionalRepositories) RawMaterialStockRepo() inventory.RawMaterialStockRepository {
	return NewGormRawMaterialStockRepository(r.tx)
}

// FinishedGoodsStockRepo returns the finished goods stock repository scoped to the transaction
func (r *gormTransactionalRepositories) FinishedGoodsStockRepo() inventory.FinishedGoodsStockRepository {
	return NewGormFinishedGoodsStockRepository(r.tx)
}

var _ appinventory.TransactionScope = (*GormTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
