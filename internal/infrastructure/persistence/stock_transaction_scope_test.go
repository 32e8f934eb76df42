package persistence

import (
	"context"
	"testing"

	appinventory "github.com/avellanos/backend/internal/application/inventory"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupStockTestDB creates a shared in-memory SQLite database so the
// transaction connection sees the same data as the test connection
func setupStockTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE raw_material_stocks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			raw_material_id TEXT NOT NULL UNIQUE,
			quantity_kg NUMERIC NOT NULL DEFAULT 0
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE finished_goods_stocks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			finished_product_id TEXT NOT NULL UNIQUE,
			quantity_kg NUMERIC NOT NULL DEFAULT 0
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormTransactionScope_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits stock movements when the function succeeds", func(t *testing.T) {
		db := setupStockTestDB(t, "txscope_commit")
		scope := NewGormTransactionScope(db)

		materialID := uuid.New()
		stock, err := inventory.NewRawMaterialStock(materialID)
		require.NoError(t, err)
		require.NoError(t, NewGormRawMaterialStockRepository(db).Save(ctx, stock))

		err = scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			s, err := repos.RawMaterialStockRepo().FindByRawMaterial(ctx, materialID)
			if err != nil {
				return err
			}
			if err := s.Credit(decimal.NewFromInt(500)); err != nil {
				return err
			}
			return repos.RawMaterialStockRepo().SaveWithVersion(ctx, s)
		})
		require.NoError(t, err)

		after, err := NewGormRawMaterialStockRepository(db).FindByRawMaterial(ctx, materialID)
		require.NoError(t, err)
		assert.True(t, after.QuantityKg.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, 2, after.Version)
	})

	t.Run("rolls back every movement when the function fails", func(t *testing.T) {
		db := setupStockTestDB(t, "txscope_rollback")
		scope := NewGormTransactionScope(db)

		materialID := uuid.New()
		stock, err := inventory.NewRawMaterialStock(materialID)
		require.NoError(t, err)
		require.NoError(t, stock.Credit(decimal.NewFromInt(200)))
		require.NoError(t, NewGormRawMaterialStockRepository(db).Save(ctx, stock))

		productID := uuid.New()

		// Debit the raw side, then fail before the finished side credits:
		// the debit must not survive
		err = scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			raw, err := repos.RawMaterialStockRepo().FindByRawMaterial(ctx, materialID)
			if err != nil {
				return err
			}
			if err := raw.Debit(decimal.NewFromInt(150)); err != nil {
				return err
			}
			if err := repos.RawMaterialStockRepo().SaveWithVersion(ctx, raw); err != nil {
				return err
			}

			_, err = repos.FinishedGoodsStockRepo().FindByProduct(ctx, productID)
			return err
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)

		after, err := NewGormRawMaterialStockRepository(db).FindByRawMaterial(ctx, materialID)
		require.NoError(t, err)
		assert.True(t, after.QuantityKg.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, 2, after.Version)
	})

	t.Run("surfaces insufficient stock without touching the row", func(t *testing.T) {
		db := setupStockTestDB(t, "txscope_insufficient")
		scope := NewGormTransactionScope(db)

		materialID := uuid.New()
		stock, err := inventory.NewRawMaterialStock(materialID)
		require.NoError(t, err)
		require.NoError(t, stock.Credit(decimal.NewFromInt(80)))
		require.NoError(t, NewGormRawMaterialStockRepository(db).Save(ctx, stock))

		err = scope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
			raw, err := repos.RawMaterialStockRepo().FindByRawMaterial(ctx, materialID)
			if err != nil {
				return err
			}
			return raw.Debit(decimal.NewFromInt(100))
		})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		after, err := NewGormRawMaterialStockRepository(db).FindByRawMaterial(ctx, materialID)
		require.NoError(t, err)
		assert.True(t, after.QuantityKg.Equal(decimal.NewFromInt(80)))
	})
}
