package trade

import (
	"context"
	"testing"
	"time"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSalesOrderRepository is a mock implementation of trade.SalesOrderRepository
type MockSalesOrderRepository struct {
	mock.Mock
}

func (m *MockSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.SalesOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) FindRecent(ctx context.Context, limit int) ([]trade.SalesOrder, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.SalesOrder), args.Error(1)
}

func (m *MockSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesOrderRepository) CountItemsByProduct(ctx context.Context, finishedProductID uuid.UUID) (int64, error) {
	args := m.Called(ctx, finishedProductID)
	return args.Get(0).(int64), args.Error(1)
}

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockFinishedProductRepository is a mock implementation of catalog.FinishedProductRepository
type MockFinishedProductRepository struct {
	mock.Mock
}

func (m *MockFinishedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FinishedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FinishedProduct), args.Error(1)
}

func (m *MockFinishedProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.FinishedProduct, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FinishedProduct), args.Error(1)
}

func (m *MockFinishedProductRepository) FindByType(ctx context.Context, productType catalog.ProductType, filter shared.Filter) ([]catalog.FinishedProduct, error) {
	args := m.Called(ctx, productType, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FinishedProduct), args.Error(1)
}

func (m *MockFinishedProductRepository) Save(ctx context.Context, product *catalog.FinishedProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockFinishedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFinishedProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockShipmentRepository is a mock implementation of logistics.ShipmentRepository
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*logistics.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByIDWithServices(ctx context.Context, id uuid.UUID) (*logistics.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) ([]logistics.Shipment, error) {
	args := m.Called(ctx, salesOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Save(ctx context.Context, shipment *logistics.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountInWindow(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) CountBySalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, salesOrderID)
	return args.Get(0).(int64), args.Error(1)
}

type salesOrderServiceMocks struct {
	orderRepo    *MockSalesOrderRepository
	clientRepo   *MockClientRepository
	productRepo  *MockFinishedProductRepository
	shipmentRepo *MockShipmentRepository
}

func newTestSalesOrderService() (*SalesOrderService, salesOrderServiceMocks) {
	mocks := salesOrderServiceMocks{
		orderRepo:    new(MockSalesOrderRepository),
		clientRepo:   new(MockClientRepository),
		productRepo:  new(MockFinishedProductRepository),
		shipmentRepo: new(MockShipmentRepository),
	}
	service := NewSalesOrderService(mocks.orderRepo, mocks.clientRepo, mocks.productRepo, mocks.shipmentRepo)
	return service, mocks
}

func createPendingOrder(t *testing.T) *trade.SalesOrder {
	t.Helper()
	order, err := trade.NewSalesOrder("EXP-2025-001", uuid.New(), time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(30), trade.BalanceAgainstCopies, nil, "")
	require.NoError(t, err)
	return order
}

func createFrozenHalfShellProduct(t *testing.T) *catalog.FinishedProduct {
	t.Helper()
	product, err := catalog.NewFinishedProduct("Chorito media concha", catalog.ProductTypeFrozen, "Caja 10 kg", decimal.NewFromFloat(4.50))
	require.NoError(t, err)
	return product
}

func TestSalesOrderService_Create(t *testing.T) {
	ctx := context.Background()

	req := CreateSalesOrderRequest{
		OrderNumber:    "EXP-2025-001",
		ClientID:       uuid.New(),
		OrderDate:      time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		AdvancePercent: decimal.NewFromInt(30),
		BalanceTerms:   "against_copies",
	}

	t.Run("creates a pending order with items", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		client, err := partner.NewClient("Mariscos del Pacifico SA", "Spain", "", "")
		require.NoError(t, err)
		product := createFrozenHalfShellProduct(t)

		itemReq := req
		itemReq.Items = []OrderItemRequest{{
			FinishedProductID: product.ID,
			QuantityKg:        decimal.NewFromInt(1000),
			PricePerKgUSD:     decimal.NewFromFloat(4.50),
		}}

		mocks.orderRepo.On("FindByOrderNumber", ctx, req.OrderNumber).Return(nil, shared.ErrNotFound)
		mocks.clientRepo.On("FindByID", ctx, req.ClientID).Return(client, nil)
		mocks.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.orderRepo.On("Save", ctx, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

		response, err := service.Create(ctx, itemReq)

		require.NoError(t, err)
		assert.Equal(t, "EXP-2025-001", response.OrderNumber)
		assert.Equal(t, string(trade.OrderStatusPending), response.Status)
		require.Len(t, response.Items, 1)
		assert.True(t, decimal.NewFromInt(4500).Equal(response.TotalUSD))
		assert.True(t, decimal.NewFromInt(1350).Equal(response.AdvanceUSD))
		mocks.orderRepo.AssertExpectations(t)
	})

	t.Run("keeps the estimated balance payment date", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		client, err := partner.NewClient("Mariscos del Pacifico SA", "Spain", "", "")
		require.NoError(t, err)

		balanceDate := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
		dated := req
		dated.EstimatedBalanceDate = &balanceDate

		mocks.orderRepo.On("FindByOrderNumber", ctx, req.OrderNumber).Return(nil, shared.ErrNotFound)
		mocks.clientRepo.On("FindByID", ctx, req.ClientID).Return(client, nil)
		mocks.orderRepo.On("Save", ctx, mock.AnythingOfType("*trade.SalesOrder")).Return(nil)

		response, err := service.Create(ctx, dated)

		require.NoError(t, err)
		require.NotNil(t, response.EstimatedBalanceDate)
		assert.True(t, balanceDate.Equal(*response.EstimatedBalanceDate))
	})

	t.Run("rejects a duplicate order number", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		existing := createPendingOrder(t)
		mocks.orderRepo.On("FindByOrderNumber", ctx, req.OrderNumber).Return(existing, nil)

		response, err := service.Create(ctx, req)

		assert.Nil(t, response)
		assert.True(t, shared.IsDomainErrorWithCode(err, "ALREADY_EXISTS"))
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a line and reprices the order", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)
		product := createFrozenHalfShellProduct(t)

		mocks.orderRepo.On("FindByIDWithItems", ctx, order.ID).Return(order, nil)
		mocks.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.orderRepo.On("Save", ctx, order).Return(nil)

		response, err := service.AddItem(ctx, order.ID, OrderItemRequest{
			FinishedProductID: product.ID,
			QuantityKg:        decimal.NewFromInt(500),
			PricePerKgUSD:     decimal.NewFromInt(6),
		})

		require.NoError(t, err)
		require.Len(t, response.Items, 1)
		assert.True(t, decimal.NewFromInt(3000).Equal(response.TotalUSD))
		mocks.orderRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)
		productID := uuid.New()

		mocks.orderRepo.On("FindByIDWithItems", ctx, order.ID).Return(order, nil)
		mocks.productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		response, err := service.AddItem(ctx, order.ID, OrderItemRequest{
			FinishedProductID: productID,
			QuantityKg:        decimal.NewFromInt(100),
			PricePerKgUSD:     decimal.NewFromInt(6),
		})

		assert.Nil(t, response)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms an order with items", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)
		_, err := order.AddItem(uuid.New(), decimal.NewFromInt(500), decimal.NewFromInt(6))
		require.NoError(t, err)

		mocks.orderRepo.On("FindByIDWithItems", ctx, order.ID).Return(order, nil)
		mocks.orderRepo.On("Save", ctx, order).Return(nil)

		response, err := service.Confirm(ctx, order.ID)

		require.NoError(t, err)
		assert.Equal(t, string(trade.OrderStatusConfirmed), response.Status)
		mocks.orderRepo.AssertExpectations(t)
	})

	t.Run("rejects confirming an empty order", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)

		mocks.orderRepo.On("FindByIDWithItems", ctx, order.ID).Return(order, nil)

		response, err := service.Confirm(ctx, order.ID)

		assert.Nil(t, response)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_STATE"))
		mocks.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSalesOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses to delete an order with shipments", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)

		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.shipmentRepo.On("CountBySalesOrder", ctx, order.ID).Return(int64(1), nil)

		err := service.Delete(ctx, order.ID)

		assert.True(t, shared.IsDomainErrorWithCode(err, "IN_USE"))
		mocks.orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an order without shipments", func(t *testing.T) {
		service, mocks := newTestSalesOrderService()

		order := createPendingOrder(t)

		mocks.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.shipmentRepo.On("CountBySalesOrder", ctx, order.ID).Return(int64(0), nil)
		mocks.orderRepo.On("Delete", ctx, order.ID).Return(nil)

		err := service.Delete(ctx, order.ID)

		require.NoError(t, err)
		mocks.orderRepo.AssertExpectations(t)
	})
}
