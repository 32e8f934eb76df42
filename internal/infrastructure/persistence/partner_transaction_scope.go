package persistence

import (
	"context"

	apppartner "github.com/avellanos/backend/internal/application/partner"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPartnerTransactionScope implements the partner TransactionScope using
// GORM transactions. Both repositories handed to the executed function are
// bound to the same database transaction, so detaching a client from its
// quotations and removing the client commit or roll back together.
type GormPartnerTransactionScope struct {
	db *gorm.DB
}

// NewGormPartnerTransactionScope creates a new GormPartnerTransactionScope
func NewGormPartnerTransactionScope(db *gorm.DB) *GormPartnerTransactionScope {
	return &GormPartnerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPartnerTransactionalRepositories{tx: tx})
	})
}

// gormPartnerTransactionalRepositories provides repositories bound to a
// single GORM transaction
type gormPartnerTransactionalRepositories struct {
	tx *gorm.DB
}

// ClientRepo returns the client repository scoped to the transaction
func (r *gormPartnerTransactionalRepositories) ClientRepo() partner.ClientRepository {
	return NewGormClientRepository(r.tx)
}

// QuotationRepo returns the quotation repository scoped to the transaction
func (r *gormPartnerTransactionalRepositories) QuotationRepo() trade.QuotationRepository {
	return NewGormQuotationRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormPartnerTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormPartnerTransactionalRepositories)(nil)
