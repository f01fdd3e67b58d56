package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketsHandler manages ticket and comment endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /tickets. A requester_id parameter overrides the named
// view; agent_id identifies the caller for My Open Tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	return c.JSON(h.service.List(service.TicketListQuery{
		View:        c.Query("view"),
		RequesterID: c.Query("requester_id"),
		AgentID:     c.Query("agent_id"),
	}))
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	ticket, err := h.service.Create(c.Context(), service.TicketCreateInput{
		Subject:       req.Subject,
		Description:   req.Description,
		Priority:      req.Priority,
		Source:        req.Source,
		RequesterID:   req.RequesterID,
		AssigneeID:    req.AssigneeID,
		TeamID:        req.TeamID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Update(c.Context(), c.Params("id"), c.Body())
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// ListComments GET /tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	return c.JSON(h.service.ListComments(c.Params("id")))
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	comment, err := h.service.AddComment(c.Context(), c.Params("id"), service.CommentCreateInput{
		Body:           req.Body,
		IsInternalNote: req.IsInternalNote,
		AuthorID:       req.AuthorID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
