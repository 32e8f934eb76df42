package partner

import (
	"context"
	"testing"

	"github.com/avellanos/backend/internal/domain/partner"
	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of procurement.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Purchase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]procurement.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Save(ctx context.Context, purchase *procurement.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) SaveWithVersion(ctx context.Context, purchase *procurement.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) CountByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (int64, error) {
	args := m.Called(ctx, rawMaterialID)
	return args.Get(0).(int64), args.Error(1)
}

func createTestSupplier(t *testing.T) *partner.Supplier {
	t.Helper()
	supplier, err := partner.NewSupplier("Cultivos Calbuco", "Los Lagos", "Pedro Mansilla", "pedro@cultivoscalbuco.cl", "+56 9 5555 0101")
	require.NoError(t, err)
	return supplier
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a supplier", func(t *testing.T) {
		supplierRepo := new(MockSupplierRepository)
		service := NewSupplierService(supplierRepo, new(MockPurchaseRepository))

		supplierRepo.On("Save", ctx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		response, err := service.Create(ctx, CreateSupplierRequest{
			Name:   "Cultivos Calbuco",
			Region: "Los Lagos",
		})

		require.NoError(t, err)
		assert.Equal(t, "Cultivos Calbuco", response.Name)
		assert.Equal(t, "Los Lagos", response.Region)
		supplierRepo.AssertExpectations(t)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		supplierRepo := new(MockSupplierRepository)
		service := NewSupplierService(supplierRepo, new(MockPurchaseRepository))

		response, err := service.Create(ctx, CreateSupplierRequest{Name: ""})

		assert.Nil(t, response)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_NAME"))
		supplierRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a supplier without purchases", func(t *testing.T) {
		supplierRepo := new(MockSupplierRepository)
		purchaseRepo := new(MockPurchaseRepository)
		service := NewSupplierService(supplierRepo, purchaseRepo)

		supplier := createTestSupplier(t)

		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		purchaseRepo.On("CountBySupplier", ctx, supplier.ID).Return(int64(0), nil)
		supplierRepo.On("Delete", ctx, supplier.ID).Return(nil)

		err := service.Delete(ctx, supplier.ID)

		require.NoError(t, err)
		supplierRepo.AssertExpectations(t)
	})

	t.Run("refuses to delete a supplier with purchases", func(t *testing.T) {
		supplierRepo := new(MockSupplierRepository)
		purchaseRepo := new(MockPurchaseRepository)
		service := NewSupplierService(supplierRepo, purchaseRepo)

		supplier := createTestSupplier(t)

		supplierRepo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		purchaseRepo.On("CountBySupplier", ctx, supplier.ID).Return(int64(5), nil)

		err := service.Delete(ctx, supplier.ID)

		assert.True(t, shared.IsDomainErrorWithCode(err, "IN_USE"))
		supplierRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
