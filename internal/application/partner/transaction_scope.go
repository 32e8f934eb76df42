package partner

import (
	"context"

	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories that
// take part in client removal. Detaching a client from its quotations and
// deleting the client row commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the client and quotation
// repositories within a transaction. Both repositories share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// ClientRepo returns the client repository scoped to the current transaction
	ClientRepo() partner.ClientRepository
	// QuotationRepo returns the quotation repository scoped to the current transaction
	QuotationRepo() trade.QuotationRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	clientRepo    partner.ClientRepository
	quotationRepo trade.QuotationRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(clientRepo partner.ClientRepository, quotationRepo trade.QuotationRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		clientRepo:    clientRepo,
		quotationRepo: quotationRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ClientRepo returns the client repository.
func (s *NoOpTransactionScope) ClientRepo() partner.ClientRepository {
	return s.clientRepo
}

// QuotationRepo returns the quotation repository.
func (s *NoOpTransactionScope) QuotationRepo() trade.QuotationRepository {
	return s.quotationRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
