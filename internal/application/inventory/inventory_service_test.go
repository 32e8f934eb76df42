package inventory

import (
	"context"
	"testing"

	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRawMaterialStockRepository is a mock implementation of inventory.RawMaterialStockRepository
type MockRawMaterialStockRepository struct {
	mock.Mock
}

func (m *MockRawMaterialStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.RawMaterialStock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.RawMaterialStock), args.Error(1)
}

func (m *MockRawMaterialStockRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*inventory.RawMaterialStock, error) {
	args := m.Called(ctx, rawMaterialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.RawMaterialStock), args.Error(1)
}

func (m *MockRawMaterialStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterialStock, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.RawMaterialStock), args.Error(1)
}

func (m *MockRawMaterialStockRepository) Save(ctx context.Context, stock *inventory.RawMaterialStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockRawMaterialStockRepository) SaveWithVersion(ctx context.Context, stock *inventory.RawMaterialStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockRawMaterialStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockFinishedGoodsStockRepository is a mock implementation of inventory.FinishedGoodsStockRepository
type MockFinishedGoodsStockRepository struct {
	mock.Mock
}

func (m *MockFinishedGoodsStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.FinishedGoodsStock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.FinishedGoodsStock), args.Error(1)
}

func (m *MockFinishedGoodsStockRepository) FindByProduct(ctx context.Context, finishedProductID uuid.UUID) (*inventory.FinishedGoodsStock, error) {
	args := m.Called(ctx, finishedProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.FinishedGoodsStock), args.Error(1)
}

func (m *MockFinishedGoodsStockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.FinishedGoodsStock, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.FinishedGoodsStock), args.Error(1)
}

func (m *MockFinishedGoodsStockRepository) Save(ctx context.Context, stock *inventory.FinishedGoodsStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockFinishedGoodsStockRepository) SaveWithVersion(ctx context.Context, stock *inventory.FinishedGoodsStock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockFinishedGoodsStockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFinishedGoodsStockRepository) CountBelowThreshold(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestInventoryService_GetRawMaterialStock(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stock row", func(t *testing.T) {
		rawRepo := new(MockRawMaterialStockRepository)
		service := NewInventoryService(rawRepo, new(MockFinishedGoodsStockRepository))

		materialID := uuid.New()
		stock, err := inventory.NewRawMaterialStock(materialID)
		require.NoError(t, err)
		require.NoError(t, stock.Credit(decimal.NewFromInt(350)))

		rawRepo.On("FindByRawMaterial", ctx, materialID).Return(stock, nil)

		response, err := service.GetRawMaterialStock(ctx, materialID)

		require.NoError(t, err)
		assert.Equal(t, materialID, response.RawMaterialID)
		assert.True(t, decimal.NewFromInt(350).Equal(response.QuantityKg))
	})

	t.Run("returns not found for an unknown material", func(t *testing.T) {
		rawRepo := new(MockRawMaterialStockRepository)
		service := NewInventoryService(rawRepo, new(MockFinishedGoodsStockRepository))

		materialID := uuid.New()
		rawRepo.On("FindByRawMaterial", ctx, materialID).Return(nil, shared.ErrNotFound)

		response, err := service.GetRawMaterialStock(ctx, materialID)

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInventoryService_GetFinishedGoodsStock(t *testing.T) {
	ctx := context.Background()

	t.Run("flags stock under the alert threshold", func(t *testing.T) {
		finishedRepo := new(MockFinishedGoodsStockRepository)
		service := NewInventoryService(new(MockRawMaterialStockRepository), finishedRepo)

		productID := uuid.New()
		stock, err := inventory.NewFinishedGoodsStock(productID)
		require.NoError(t, err)
		require.NoError(t, stock.Credit(decimal.NewFromInt(40)))

		finishedRepo.On("FindByProduct", ctx, productID).Return(stock, nil)

		response, err := service.GetFinishedGoodsStock(ctx, productID)

		require.NoError(t, err)
		assert.Equal(t, productID, response.FinishedProductID)
		assert.True(t, response.BelowThreshold)
	})
}

func TestInventoryService_ListRawMaterialStocks(t *testing.T) {
	ctx := context.Background()

	rawRepo := new(MockRawMaterialStockRepository)
	service := NewInventoryService(rawRepo, new(MockFinishedGoodsStockRepository))

	stock, err := inventory.NewRawMaterialStock(uuid.New())
	require.NoError(t, err)

	rawRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]inventory.RawMaterialStock{*stock}, nil)
	rawRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	responses, total, err := service.ListRawMaterialStocks(ctx, StockListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].QuantityKg.IsZero())
}
