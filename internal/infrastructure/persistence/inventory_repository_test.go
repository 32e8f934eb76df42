package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB creates a GORM DB backed by a mocked SQL connection
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newCreditedRawMaterialStock(t *testing.T, kg int64) *inventory.RawMaterialStock {
	t.Helper()

	stock, err := inventory.NewRawMaterialStock(uuid.New())
	require.NoError(t, err)
	require.NoError(t, stock.Credit(decimal.NewFromInt(kg)))
	return stock
}

func TestGormRawMaterialStockRepository_FindByRawMaterial(t *testing.T) {
	t.Run("finds the stock row for a raw material", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormRawMaterialStockRepository(gormDB)

		stockID := uuid.New()
		materialID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "version", "raw_material_id", "quantity_kg"}).
			AddRow(stockID, 3, materialID, decimal.NewFromInt(350))

		mock.ExpectQuery(`SELECT \* FROM "raw_material_stocks" WHERE raw_material_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(materialID, 1).
			WillReturnRows(rows)

		stock, err := repo.FindByRawMaterial(context.Background(), materialID)

		require.NoError(t, err)
		assert.Equal(t, stockID, stock.ID)
		assert.Equal(t, materialID, stock.RawMaterialID)
		assert.True(t, stock.QuantityKg.Equal(decimal.NewFromInt(350)))
		assert.Equal(t, 3, stock.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no row exists", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormRawMaterialStockRepository(gormDB)

		materialID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "raw_material_stocks" WHERE raw_material_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(materialID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		stock, err := repo.FindByRawMaterial(context.Background(), materialID)

		assert.Nil(t, stock)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormRawMaterialStockRepository_SaveWithVersion(t *testing.T) {
	t.Run("updates when the stored version matches", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormRawMaterialStockRepository(gormDB)

		stock := newCreditedRawMaterialStock(t, 500)

		mock.ExpectExec(`UPDATE "raw_material_stocks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveWithVersion(context.Background(), stock)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrConcurrencyConflict when another writer won", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormRawMaterialStockRepository(gormDB)

		stock := newCreditedRawMaterialStock(t, 500)

		mock.ExpectExec(`UPDATE "raw_material_stocks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveWithVersion(context.Background(), stock)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFinishedGoodsStockRepository_SaveWithVersion(t *testing.T) {
	t.Run("returns ErrConcurrencyConflict on a stale version", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormFinishedGoodsStockRepository(gormDB)

		stock, err := inventory.NewFinishedGoodsStock(uuid.New())
		require.NoError(t, err)
		require.NoError(t, stock.Credit(decimal.NewFromInt(295)))

		mock.ExpectExec(`UPDATE "finished_goods_stocks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SaveWithVersion(context.Background(), stock)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFinishedGoodsStockRepository_CountBelowThreshold(t *testing.T) {
	t.Run("counts rows under the low-stock threshold", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormFinishedGoodsStockRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "finished_goods_stocks" WHERE quantity_kg < \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountBelowThreshold(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
