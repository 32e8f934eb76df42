package handler

import (
	appreport "github.com/avellanos/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the back-office dashboard counters
type DashboardHandler struct {
	BaseHandler
	service *appreport.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *appreport.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}
