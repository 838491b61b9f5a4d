package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mataraung/trip-api/internal/service"
)

// DashboardHandler serves the aggregated admin dashboard snapshot
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles GET /v1/admin/dashboard
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, stats)
}
