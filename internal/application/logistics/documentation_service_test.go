package logistics

import (
	"context"
	"testing"
	"time"

	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExportDocumentationRepository is a mock implementation of logistics.ExportDocumentationRepository
type MockExportDocumentationRepository struct {
	mock.Mock
}

func (m *MockExportDocumentationRepository) FindByID(ctx context.Context, id uuid.UUID) (*logistics.ExportDocumentation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.ExportDocumentation), args.Error(1)
}

func (m *MockExportDocumentationRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) (*logistics.ExportDocumentation, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.ExportDocumentation), args.Error(1)
}

func (m *MockExportDocumentationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]logistics.ExportDocumentation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.ExportDocumentation), args.Error(1)
}

func (m *MockExportDocumentationRepository) Save(ctx context.Context, doc *logistics.ExportDocumentation) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockExportDocumentationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExportDocumentationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExportDocumentationRepository) CountPendingDispatch(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestDocumentationService() (*DocumentationService, *MockExportDocumentationRepository, *MockShipmentRepository) {
	docRepo := new(MockExportDocumentationRepository)
	shipmentRepo := new(MockShipmentRepository)
	return NewDocumentationService(docRepo, shipmentRepo), docRepo, shipmentRepo
}

func createTestDocumentation(t *testing.T) *logistics.ExportDocumentation {
	t.Helper()
	doc, err := logistics.NewExportDocumentation(
		uuid.New(),
		time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)
	return doc
}

func TestDocumentationService_Create(t *testing.T) {
	ctx := context.Background()

	req := CreateDocumentationRequest{
		ShipmentID:           uuid.New(),
		EstimatedArrivalDate: time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		CourierDeadline:      time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
	}

	t.Run("opens a checklist for a shipment", func(t *testing.T) {
		service, docRepo, shipmentRepo := newTestDocumentationService()

		shipment := createTestShipment(t)
		shipmentReq := req
		shipmentReq.ShipmentID = shipment.ID

		shipmentRepo.On("FindByID", ctx, shipment.ID).Return(shipment, nil)
		docRepo.On("FindByShipment", ctx, shipment.ID).Return(nil, shared.ErrNotFound)
		docRepo.On("Save", ctx, mock.AnythingOfType("*logistics.ExportDocumentation")).Return(nil)

		response, err := service.Create(ctx, shipmentReq)

		require.NoError(t, err)
		assert.Equal(t, shipment.ID, response.ShipmentID)
		assert.Equal(t, string(logistics.DispatchPending), response.DispatchStatus)
		assert.False(t, response.Complete)
		docRepo.AssertExpectations(t)
	})

	t.Run("rejects a second checklist on the same shipment", func(t *testing.T) {
		service, docRepo, shipmentRepo := newTestDocumentationService()

		shipment := createTestShipment(t)
		existing := createTestDocumentation(t)
		shipmentReq := req
		shipmentReq.ShipmentID = shipment.ID

		shipmentRepo.On("FindByID", ctx, shipment.ID).Return(shipment, nil)
		docRepo.On("FindByShipment", ctx, shipment.ID).Return(existing, nil)

		response, err := service.Create(ctx, shipmentReq)

		assert.Nil(t, response)
		assert.True(t, shared.IsDomainErrorWithCode(err, "ALREADY_EXISTS"))
		docRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDocumentationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("ticks checklist flags", func(t *testing.T) {
		service, docRepo, _ := newTestDocumentationService()

		doc := createTestDocumentation(t)

		docRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		docRepo.On("Save", ctx, doc).Return(nil)

		yes := true
		response, err := service.Update(ctx, doc.ID, UpdateDocumentationRequest{
			CustomsDeclaration: &yes,
			PackingList:        &yes,
		})

		require.NoError(t, err)
		assert.True(t, response.CustomsDeclaration)
		assert.True(t, response.PackingList)
		assert.False(t, response.DispatchGuide)
		assert.False(t, response.Complete)
		docRepo.AssertExpectations(t)
	})
}

func TestDocumentationService_MarkSent(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a complete document set", func(t *testing.T) {
		service, docRepo, _ := newTestDocumentationService()

		doc := createTestDocumentation(t)
		doc.UpdateChecklist(true, true, true, true, "")

		docRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		docRepo.On("Save", ctx, doc).Return(nil)

		response, err := service.MarkSent(ctx, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, string(logistics.DispatchSent), response.DispatchStatus)
		docRepo.AssertExpectations(t)
	})

	t.Run("rejects an incomplete document set", func(t *testing.T) {
		service, docRepo, _ := newTestDocumentationService()

		doc := createTestDocumentation(t)
		doc.UpdateChecklist(true, true, true, false, "")

		docRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)

		response, err := service.MarkSent(ctx, doc.ID)

		assert.Nil(t, response)
		assert.True(t, shared.IsDomainErrorWithCode(err, "INVALID_STATE"))
		docRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
