package persistence

import (
	"context"
	"testing"
	"time"

	apppartner "github.com/avellanos/backend/internal/application/partner"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupPartnerScopeTestDB creates a shared in-memory SQLite database so the
// transaction connection sees the same data as the test connection
func setupPartnerScopeTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE clients (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			country TEXT,
			email TEXT,
			phone TEXT
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE quotations (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			client_id TEXT,
			finished_product_id TEXT NOT NULL,
			quote_date DATETIME NOT NULL,
			quantity_kg NUMERIC NOT NULL,
			total_cost_usd NUMERIC NOT NULL,
			margin_percent NUMERIC NOT NULL,
			converted INTEGER NOT NULL DEFAULT 0,
			notes TEXT
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seedClientWithQuotation(t *testing.T, db *gorm.DB) (*partner.Client, *trade.Quotation) {
	t.Helper()

	client, err := partner.NewClient("Mariscos del Pacifico SA", "Spain", "", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(client).Error)

	quotation, err := trade.NewQuotation(&client.ID, uuid.New(),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(500), decimal.NewFromInt(1800), decimal.NewFromInt(20), "")
	require.NoError(t, err)
	require.NoError(t, db.Create(quotation).Error)

	return client, quotation
}

func TestGormPartnerTransactionScope_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits detach and delete together", func(t *testing.T) {
		db := setupPartnerScopeTestDB(t, "partnerscope_commit")
		scope := NewGormPartnerTransactionScope(db)

		client, quotation := seedClientWithQuotation(t, db)

		err := scope.Execute(ctx, func(repos apppartner.TransactionalRepositories) error {
			if err := repos.QuotationRepo().DetachClient(ctx, client.ID); err != nil {
				return err
			}
			return repos.ClientRepo().Delete(ctx, client.ID)
		})
		require.NoError(t, err)

		repo := NewGormClientRepository(db)
		_, err = repo.FindByID(ctx, client.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var detached trade.Quotation
		require.NoError(t, db.First(&detached, "id = ?", quotation.ID).Error)
		assert.Nil(t, detached.ClientID)
	})

	t.Run("rolls back the detach when the delete fails", func(t *testing.T) {
		db := setupPartnerScopeTestDB(t, "partnerscope_rollback")
		scope := NewGormPartnerTransactionScope(db)

		client, quotation := seedClientWithQuotation(t, db)

		err := scope.Execute(ctx, func(repos apppartner.TransactionalRepositories) error {
			if err := repos.QuotationRepo().DetachClient(ctx, client.ID); err != nil {
				return err
			}
			return repos.ClientRepo().Delete(ctx, uuid.New())
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)

		repo := NewGormClientRepository(db)
		_, err = repo.FindByID(ctx, client.ID)
		require.NoError(t, err)

		var kept trade.Quotation
		require.NoError(t, db.First(&kept, "id = ?", quotation.ID).Error)
		require.NotNil(t, kept.ClientID)
		assert.Equal(t, client.ID, *kept.ClientID)
	})
}
