package procurement

import (
	"errors"
	"testing"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPurchase(t *testing.T) *Purchase {
	t.Helper()
	purchase, err := NewPurchase(
		uuid.New(), uuid.New(),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(500), decimal.NewFromFloat(1.20),
		shared.CurrencyCLP, "",
	)
	require.NoError(t, err)
	return purchase
}

func TestNewPurchase(t *testing.T) {
	t.Run("creates purchase with valid input", func(t *testing.T) {
		supplierID := uuid.New()
		materialID := uuid.New()
		purchase, err := NewPurchase(
			supplierID, materialID,
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			decimal.NewFromInt(500), decimal.NewFromFloat(1.20),
			shared.CurrencyCLP, "first lot of the season",
		)
		require.NoError(t, err)
		require.NotNil(t, purchase)

		assert.NotEqual(t, uuid.Nil, purchase.ID)
		assert.Equal(t, supplierID, purchase.SupplierID)
		assert.Equal(t, materialID, purchase.RawMaterialID)
		assert.False(t, purchase.Fulfilled)
		assert.Nil(t, purchase.FulfilledAt)
		assert.Equal(t, 1, purchase.Version)
	})

	t.Run("fails with nil supplier", func(t *testing.T) {
		_, err := NewPurchase(uuid.Nil, uuid.New(), time.Now(), decimal.NewFromInt(10), decimal.NewFromInt(1), shared.CurrencyUSD, "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_SUPPLIER"))
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewPurchase(uuid.New(), uuid.New(), time.Now(), decimal.Zero, decimal.NewFromInt(1), shared.CurrencyUSD, "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_QUANTITY"))
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewPurchase(uuid.New(), uuid.New(), time.Now(), decimal.NewFromInt(10), decimal.NewFromInt(-1), shared.CurrencyUSD, "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_PRICE"))
	})

	t.Run("fails with unknown currency", func(t *testing.T) {
		_, err := NewPurchase(uuid.New(), uuid.New(), time.Now(), decimal.NewFromInt(10), decimal.NewFromInt(1), shared.Currency("EUR"), "")
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_CURRENCY"))
	})
}

func TestPurchase_TotalCost(t *testing.T) {
	purchase := createTestPurchase(t)
	// 500 kg at 1.20 per kg
	assert.True(t, purchase.TotalCost().Equal(decimal.NewFromInt(600)), "got %s", purchase.TotalCost())
}

func TestPurchase_Fulfill(t *testing.T) {
	t.Run("marks purchase fulfilled once", func(t *testing.T) {
		purchase := createTestPurchase(t)
		err := purchase.Fulfill()
		require.NoError(t, err)
		assert.True(t, purchase.Fulfilled)
		require.NotNil(t, purchase.FulfilledAt)
		assert.Equal(t, 2, purchase.Version)
	})

	t.Run("rejects a second fulfillment", func(t *testing.T) {
		purchase := createTestPurchase(t)
		require.NoError(t, purchase.Fulfill())

		err := purchase.Fulfill()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrDuplicateFulfillment) || shared.IsDomainErrorWithCode(err, "DUPLICATE_FULFILLMENT"))
	})
}

func TestPurchase_Update(t *testing.T) {
	t.Run("updates an unfulfilled purchase", func(t *testing.T) {
		purchase := createTestPurchase(t)
		newSupplier := uuid.New()
		err := purchase.Update(
			newSupplier, purchase.RawMaterialID, purchase.PurchaseDate,
			decimal.NewFromInt(750), decimal.NewFromFloat(1.10),
			shared.CurrencyCLP, "renegotiated",
		)
		require.NoError(t, err)
		assert.Equal(t, newSupplier, purchase.SupplierID)
		assert.True(t, purchase.QuantityKg.Equal(decimal.NewFromInt(750)))
	})

	t.Run("rejects update after fulfillment", func(t *testing.T) {
		purchase := createTestPurchase(t)
		require.NoError(t, purchase.Fulfill())

		err := purchase.Update(
			purchase.SupplierID, purchase.RawMaterialID, purchase.PurchaseDate,
			decimal.NewFromInt(100), decimal.NewFromInt(1),
			shared.CurrencyCLP, "",
		)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_STATE"))
	})
}
