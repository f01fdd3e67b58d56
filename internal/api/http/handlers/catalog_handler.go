package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// CatalogHandler manages team, category and subcategory endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListTeams GET /teams.
func (h *CatalogHandler) ListTeams(c *fiber.Ctx) error {
	return c.JSON(h.service.ListTeams())
}

// CreateTeam POST /teams.
func (h *CatalogHandler) CreateTeam(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	team, err := h.service.CreateTeam(req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// UpdateTeam PATCH /teams/:id.
func (h *CatalogHandler) UpdateTeam(c *fiber.Ctx) error {
	team, err := h.service.UpdateTeam(c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// DeleteTeam DELETE /teams/:id.
func (h *CatalogHandler) DeleteTeam(c *fiber.Ctx) error {
	team, err := h.service.DeleteTeam(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(team)
}

// ListCategories GET /categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCategories())
}

// CreateCategory POST /categories.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory PATCH /categories/:id.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.service.UpdateCategory(c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// DeleteCategory DELETE /categories/:id.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	category, err := h.service.DeleteCategory(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// ListSubcategories GET /subcategories.
func (h *CatalogHandler) ListSubcategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListSubcategories(c.Query("parent_category_id")))
}

// CreateSubcategory POST /subcategories.
func (h *CatalogHandler) CreateSubcategory(c *fiber.Ctx) error {
	var req dto.CreateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	subcategory, err := h.service.CreateSubcategory(req.Name, req.ParentCategoryID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(subcategory)
}

// UpdateSubcategory PATCH /subcategories/:id.
func (h *CatalogHandler) UpdateSubcategory(c *fiber.Ctx) error {
	subcategory, err := h.service.UpdateSubcategory(c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(subcategory)
}

// DeleteSubcategory DELETE /subcategories/:id.
func (h *CatalogHandler) DeleteSubcategory(c *fiber.Ctx) error {
	subcategory, err := h.service.DeleteSubcategory(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(subcategory)
}
