package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
)

// DashboardHandler serves synthesized dashboard statistics.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Stats GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
