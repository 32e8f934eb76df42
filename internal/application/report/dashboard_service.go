package report

import (
	"context"
	"time"

	apptrade "github.com/avellanos/backend/internal/application/trade"
	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/avellanos/backend/internal/domain/logistics"
	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/trade"
)

// upcomingShipmentDays is the length of the dashboard's shipment lookahead
// window. Shipments dated from today through today plus this many days are
// counted, both ends inclusive.
const upcomingShipmentDays = 7

// recentOrderLimit is how many recent orders the dashboard shows
const recentOrderLimit = 5

// DashboardResponse aggregates the operational counters shown on the
// back-office landing page
type DashboardResponse struct {
	PendingOrders      int64                         `json:"pending_orders"`
	UnpostedOperations int64                         `json:"unposted_operations"`
	UpcomingShipments  int64                         `json:"upcoming_shipments"`
	PendingDocuments   int64                         `json:"pending_documents"`
	LowStockProducts   int64                         `json:"low_stock_products"`
	RecentOrders       []apptrade.SalesOrderResponse `json:"recent_orders"`
	GeneratedAt        time.Time                     `json:"generated_at"`
}

// DashboardService assembles the dashboard from the counting queries of the
// individual modules. Every request recomputes the counters; nothing is
// cached.
type DashboardService struct {
	orderRepo     trade.SalesOrderRepository
	operationRepo processing.OperationRepository
	shipmentRepo  logistics.ShipmentRepository
	docRepo       logistics.ExportDocumentationRepository
	stockRepo     inventory.FinishedGoodsStockRepository
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	orderRepo trade.SalesOrderRepository,
	operationRepo processing.OperationRepository,
	shipmentRepo logistics.ShipmentRepository,
	docRepo logistics.ExportDocumentationRepository,
	stockRepo inventory.FinishedGoodsStockRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:     orderRepo,
		operationRepo: operationRepo,
		shipmentRepo:  shipmentRepo,
		docRepo:       docRepo,
		stockRepo:     stockRepo,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to pin the shipment
// window.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Get assembles the dashboard counters and the most recent orders
func (s *DashboardService) Get(ctx context.Context) (*DashboardResponse, error) {
	pendingOrders, err := s.orderRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	unposted, err := s.operationRepo.CountUnposted(ctx)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.now())
	windowEnd := today.AddDate(0, 0, upcomingShipmentDays)
	upcoming, err := s.shipmentRepo.CountInWindow(ctx, today, windowEnd)
	if err != nil {
		return nil, err
	}

	pendingDocs, err := s.docRepo.CountPendingDispatch(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.stockRepo.CountBelowThreshold(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.FindRecent(ctx, recentOrderLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		PendingOrders:      pendingOrders,
		UnpostedOperations: unposted,
		UpcomingShipments:  upcoming,
		PendingDocuments:   pendingDocs,
		LowStockProducts:   lowStock,
		RecentOrders:       apptrade.ToSalesOrderResponses(recent),
		GeneratedAt:        s.now(),
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
