package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Catalog   *handlers.CatalogHandler
	Tickets   *handlers.TicketsHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/users", cfg.Users.ListUsers)
	app.Post("/users", cfg.Users.CreateUser)
	app.Get("/users/:id", cfg.Users.GetUser)
	app.Patch("/users/:id", cfg.Users.UpdateUser)

	app.Get("/teams", cfg.Catalog.ListTeams)
	app.Post("/teams", cfg.Catalog.CreateTeam)
	app.Patch("/teams/:id", cfg.Catalog.UpdateTeam)
	app.Delete("/teams/:id", cfg.Catalog.DeleteTeam)

	app.Get("/categories", cfg.Catalog.ListCategories)
	app.Post("/categories", cfg.Catalog.CreateCategory)
	app.Patch("/categories/:id", cfg.Catalog.UpdateCategory)
	app.Delete("/categories/:id", cfg.Catalog.DeleteCategory)

	app.Get("/subcategories", cfg.Catalog.ListSubcategories)
	app.Post("/subcategories", cfg.Catalog.CreateSubcategory)
	app.Patch("/subcategories/:id", cfg.Catalog.UpdateSubcategory)
	app.Delete("/subcategories/:id", cfg.Catalog.DeleteSubcategory)

	app.Get("/tickets", cfg.Tickets.ListTickets)
	app.Post("/tickets", cfg.Tickets.CreateTicket)
	app.Get("/tickets/:id", cfg.Tickets.GetTicket)
	app.Patch("/tickets/:id", cfg.Tickets.UpdateTicket)
	app.Get("/tickets/:id/comments", cfg.Tickets.ListComments)
	app.Post("/tickets/:id/comments", cfg.Tickets.AddComment)

	app.Get("/dashboard/stats", cfg.Dashboard.Stats)
}
