package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	users       repository.UserRepository
	tickets     repository.TicketRepository
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, users repository.UserRepository, tickets repository.TicketRepository) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, users: users, tickets: tickets}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness: the stores must hold their seeded baseline.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	counts := fiber.Map{
		"users":   h.users.Count(),
		"tickets": h.tickets.Count(),
	}
	if h.users.Count() == 0 || h.tickets.Count() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "seeding",
			"stores": counts,
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"stores": counts,
	})
}
