package inventory

import (
	"context"

	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/procurement"
)

// TransactionScope provides transactional access to the repositories that
// take part in stock movements. When a function is executed within a
// transaction scope, all repository operations belong to the same database
// transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all stock-movement
// repositories within a transaction. All repositories returned share the
// same underlying database transaction.
//
// Stock is only ever mutated through these scoped repositories. Fulfilling a
// purchase flags the purchase and credits raw material stock in one
// transaction. Posting a processing operation flags the operation, debits
// raw material stock and credits finished goods stock in one transaction.
type TransactionalRepositories interface {
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() procurement.PurchaseRepository
	// OperationRepo returns the processing operation repository scoped to the current transaction
	OperationRepo() processing.OperationRepository
	// RawMaterialStockRepo returns the raw material stock repository scoped to the current transaction
	RawMaterialStockRepo() inventory.RawMaterialStockRepository
	// FinishedGoodsStockRepo returns the finished goods stock repository scoped to the current transaction
	FinishedGoodsStockRepo() inventory.FinishedGoodsStockRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	purchaseRepo           procurement.PurchaseRepository
	operationRepo          processing.OperationRepository
	rawMaterialStockRepo   inventory.RawMaterialStockRepository
	finishedGoodsStockRepo inventory.FinishedGoodsStockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	purchaseRepo procurement.PurchaseRepository,
	operationRepo processing.OperationRepository,
	rawMaterialStockRepo inventory.RawMaterialStockRepository,
	finishedGoodsStockRepo inventory.FinishedGoodsStockRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		purchaseRepo:           purchaseRepo,
		operationRepo:          operationRepo,
		rawMaterialStockRepo:   rawMaterialStockRepo,
		finishedGoodsStockRepo: finishedGoodsStockRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseRepo returns the purchase repository.
func (s *NoOpTransactionScope) PurchaseRepo() procurement.PurchaseRepository {
	return s.purchaseRepo
}

// OperationRepo returns the processing operation repository.
func (s *NoOpTransactionScope) OperationRepo() processing.OperationRepository {
	return s.operationRepo
}

// RawMaterialStockRepo returns the raw material stock repository.
func (s *NoOpTransactionScope) RawMaterialStockRepo() inventory.RawMaterialStockRepository {
	return s.rawMaterialStockRepo
}

// FinishedGoodsStockRepo returns the finished goods stock repository.
func (s *NoOpTransactionScope) FinishedGoodsStockRepo() inventory.FinishedGoodsStockRepository {
	return s.finishedGoodsStockRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
