package inventory

import (
	"errors"
	"testing"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRawMaterialStock(t *testing.T) {
	t.Run("starts at zero", func(t *testing.T) {
		stock, err := NewRawMaterialStock(uuid.New())
		require.NoError(t, err)
		assert.True(t, stock.QuantityKg.IsZero())
		assert.Equal(t, 1, stock.Version)
	})

	t.Run("fails with nil material", func(t *testing.T) {
		_, err := NewRawMaterialStock(uuid.Nil)
		require.Error(t, err)
	})
}

func TestRawMaterialStock_CreditDebit(t *testing.T) {
	stock, err := NewRawMaterialStock(uuid.New())
	require.NoError(t, err)

	t.Run("credit increases quantity", func(t *testing.T) {
		require.NoError(t, stock.Credit(decimal.NewFromInt(500)))
		assert.True(t, stock.QuantityKg.Equal(decimal.NewFromInt(500)))
	})

	t.Run("debit decreases quantity", func(t *testing.T) {
		require.NoError(t, stock.Debit(decimal.NewFromFloat(120.5)))
		assert.True(t, stock.QuantityKg.Equal(decimal.NewFromFloat(379.5)))
	})

	t.Run("debit beyond balance is rejected and leaves quantity unchanged", func(t *testing.T) {
		before := stock.QuantityKg
		err := stock.Debit(decimal.NewFromInt(10000))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.True(t, stock.QuantityKg.Equal(before))
	})

	t.Run("zero credit is rejected", func(t *testing.T) {
		err := stock.Credit(decimal.Zero)
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_QUANTITY"))
	})

	t.Run("negative debit is rejected", func(t *testing.T) {
		err := stock.Debit(decimal.NewFromInt(-5))
		require.Error(t, err)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_QUANTITY"))
	})
}

func TestRawMaterialStock_CanDebit(t *testing.T) {
	stock, err := NewRawMaterialStock(uuid.New())
	require.NoError(t, err)
	require.NoError(t, stock.Credit(decimal.NewFromInt(100)))

	assert.True(t, stock.CanDebit(decimal.NewFromInt(100)))
	assert.False(t, stock.CanDebit(decimal.NewFromFloat(100.001)))
}

func TestFinishedGoodsStock_Threshold(t *testing.T) {
	stock, err := NewFinishedGoodsStock(uuid.New())
	require.NoError(t, err)

	t.Run("empty stock is below threshold", func(t *testing.T) {
		assert.True(t, stock.IsBelowThreshold())
	})

	t.Run("stock at threshold is not low", func(t *testing.T) {
		require.NoError(t, stock.Credit(LowStockThresholdKg))
		assert.False(t, stock.IsBelowThreshold())
	})

	t.Run("dropping under threshold flags low again", func(t *testing.T) {
		require.NoError(t, stock.Debit(decimal.NewFromFloat(0.001)))
		assert.True(t, stock.IsBelowThreshold())
	})
}

func TestFinishedGoodsStock_Debit(t *testing.T) {
	stock, err := NewFinishedGoodsStock(uuid.New())
	require.NoError(t, err)
	require.NoError(t, stock.Credit(decimal.NewFromInt(50)))

	err = stock.Debit(decimal.NewFromInt(60))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
	assert.True(t, stock.QuantityKg.Equal(decimal.NewFromInt(50)))
}
