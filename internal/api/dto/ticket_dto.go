package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// CreateTicketRequest payload. References are bare ids.
type CreateTicketRequest struct {
	Subject       string                `json:"subject"`
	Description   string                `json:"description"`
	Priority      domain.TicketPriority `json:"priority"`
	Source        domain.TicketSource   `json:"source"`
	RequesterID   string                `json:"requester_id"`
	AssigneeID    *string               `json:"assignee_id"`
	TeamID        string                `json:"team_id"`
	CategoryID    string                `json:"category_id"`
	SubCategoryID string                `json:"sub_category_id"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Body           string `json:"body"`
	IsInternalNote bool   `json:"is_internal_note"`
	AuthorID       string `json:"author_id"`
}
