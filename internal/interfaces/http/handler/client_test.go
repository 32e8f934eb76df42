package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apppartner "github.com/avellanos/backend/internal/application/partner"
	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientRepository implements partner.ClientRepository for testing
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

// MockSalesOrderRepository implements trade.SalesOrderRepository for testing
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

// MockQuotationRepository implements trade.QuotationRepository for testing
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Quotation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Save(ctx context.Context, quotation *trade.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuotationRepository) DetachClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

type clientHandlerMocks struct {
	clientRepo    *MockClientRepository
	orderRepo     *MockSalesOrderRepository
	quotationRepo *MockQuotationRepository
}

func newTestClientRouter() (*gin.Engine, clientHandlerMocks) {
	mocks := clientHandlerMocks{
		clientRepo:    new(MockClientRepository),
		orderRepo:     new(MockSalesOrderRepository),
		quotationRepo: new(MockQuotationRepository),
	}

	txScope := apppartner.NewNoOpTransactionScope(mocks.clientRepo, mocks.quotationRepo)
	service := apppartner.NewClientService(mocks.clientRepo, mocks.orderRepo, txScope)
	h := NewClientHandler(service)

	router := gin.New()
	router.POST("/clients", h.Create)
	router.GET("/clients/:id", h.GetByID)
	router.DELETE("/clients/:id", h.Delete)
	return router, mocks
}

func newStoredClient(t *testing.T) *partner.Client {
	t.Helper()
	client, err := partner.NewClient("Mariscos del Pacifico SA", "Spain", "compras@mariscospacifico.es", "")
	require.NoError(t, err)
	return client
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("creates a client from a valid body", func(t *testing.T) {
		router, mocks := newTestClientRouter()
		mocks.clientRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		body := bytes.NewReader([]byte(`{"name": "Mariscos del Pacifico SA", "country": "Spain"}`))
		req := httptest.NewRequest("POST", "/clients", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Mariscos del Pacifico SA")
		mocks.clientRepo.AssertExpectations(t)
	})

	t.Run("rejects a body without a name", func(t *testing.T) {
		router, mocks := newTestClientRouter()

		body := bytes.NewReader([]byte(`{"country": "Spain"}`))
		req := httptest.NewRequest("POST", "/clients", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mocks.clientRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestClientHandler_GetByID(t *testing.T) {
	t.Run("returns an existing client", func(t *testing.T) {
		router, mocks := newTestClientRouter()
		client := newStoredClient(t)
		mocks.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

		req := httptest.NewRequest("GET", "/clients/"+client.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), client.ID.String())
	})

	t.Run("returns 404 for an unknown client", func(t *testing.T) {
		router, mocks := newTestClientRouter()
		unknownID := uuid.New()
		mocks.clientRepo.On("FindByID", mock.Anything, unknownID).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest("GET", "/clients/"+unknownID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("returns 400 for a malformed ID", func(t *testing.T) {
		router, mocks := newTestClientRouter()

		req := httptest.NewRequest("GET", "/clients/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mocks.clientRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestClientHandler_Delete(t *testing.T) {
	t.Run("deletes a client with no orders", func(t *testing.T) {
		router, mocks := newTestClientRouter()
		client := newStoredClient(t)
		mocks.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		mocks.orderRepo.On("CountByClient", mock.Anything, client.ID).Return(int64(0), nil)
		mocks.quotationRepo.On("DetachClient", mock.Anything, client.ID).Return(nil)
		mocks.clientRepo.On("Delete", mock.Anything, client.ID).Return(nil)

		req := httptest.NewRequest("DELETE", "/clients/"+client.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mocks.clientRepo.AssertExpectations(t)
		mocks.quotationRepo.AssertExpectations(t)
	})

	t.Run("returns 409 when the client has orders", func(t *testing.T) {
		router, mocks := newTestClientRouter()
		client := newStoredClient(t)
		mocks.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		mocks.orderRepo.On("CountByClient", mock.Anything, client.ID).Return(int64(3), nil)

		req := httptest.NewRequest("DELETE", "/clients/"+client.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "IN_USE")
		mocks.clientRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
