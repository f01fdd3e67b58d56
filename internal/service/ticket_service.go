package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// Named ticket views selectable via the list query.
const (
	ViewUnassigned     = "Unassigned"
	ViewMyOpenTickets  = "My Open Tickets"
	ViewAllOpenTickets = "All Open Tickets"
	ViewRecentlyClosed = "Recently Closed"
)

// recentlyClosedLimit truncates the Recently Closed view.
const recentlyClosedLimit = 20

// resolutionHorizon is the default SLA window applied at creation.
const resolutionHorizon = 7 * 24 * time.Hour

var errInvalidPatch = errors.New("invalid patch payload")

// TicketService coordinates ticket and comment workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	users      repository.UserRepository
	teams      repository.TeamRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	UserRepo    repository.UserRepository
	TeamRepo    repository.TeamRepository
	Dispatcher  events.Dispatcher
}

// TicketListQuery selects a named view or a requester scope. RequesterID
// overrides View; AgentID is the caller identity for My Open Tickets and
// falls back to the designated (first seeded) agent when empty.
type TicketListQuery struct {
	View        string
	RequesterID string
	AgentID     string
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject       string
	Description   string
	Priority      domain.TicketPriority
	Source        domain.TicketSource
	RequesterID   string
	AssigneeID    *string
	TeamID        string
	CategoryID    string
	SubCategoryID string
}

// CommentCreateInput describes comment creation payload.
type CommentCreateInput struct {
	Body           string
	IsInternalNote bool
	AuthorID       string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		users:      deps.UserRepo,
		teams:      deps.TeamRepo,
		dispatcher: deps.Dispatcher,
	}
}

// List returns tickets narrowed by the query, in insertion order.
func (s *TicketService) List(query TicketListQuery) []domain.Ticket {
	if query.RequesterID != "" {
		return s.tickets.List(func(t domain.Ticket) bool {
			return t.RequesterID == query.RequesterID
		})
	}

	switch query.View {
	case ViewUnassigned:
		return s.tickets.List(func(t domain.Ticket) bool {
			return t.AssigneeID == nil
		})
	case ViewMyOpenTickets:
		agentID := query.AgentID
		if agentID == "" {
			agent, ok := s.users.FirstAgent()
			if !ok {
				return s.tickets.List(nil)
			}
			agentID = agent.ID
		}
		return s.tickets.List(func(t domain.Ticket) bool {
			if t.AssigneeID == nil || *t.AssigneeID != agentID {
				return false
			}
			return t.Status == domain.TicketStatusOpen || t.Status == domain.TicketStatusInProgress
		})
	case ViewAllOpenTickets:
		return s.tickets.List(func(t domain.Ticket) bool {
			switch t.Status {
			case domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusPending:
				return true
			}
			return false
		})
	case ViewRecentlyClosed:
		closed := s.tickets.List(func(t domain.Ticket) bool {
			return t.Status == domain.TicketStatusClosed
		})
		if len(closed) > recentlyClosedLimit {
			closed = closed[:recentlyClosedLimit]
		}
		return closed
	}
	return s.tickets.List(nil)
}

// Get returns one ticket by id.
func (s *TicketService) Get(id string) (domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(id)
	return ticket, apperrors.NotFoundAs(err, "Ticket")
}

// Create validates, fills defaults and appends a new ticket.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (domain.Ticket, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return domain.Ticket{}, apperrors.NewValidationError("subject required")
	}

	now := time.Now()
	due := now.Add(resolutionHorizon)
	ticket := domain.Ticket{
		ID:                uuid.NewString(),
		DisplayID:         s.tickets.NextDisplayID(),
		Subject:           strings.TrimSpace(input.Subject),
		Description:       input.Description,
		Status:            domain.TicketStatusOpen,
		Priority:          input.Priority,
		Source:            input.Source,
		RequesterID:       input.RequesterID,
		TeamID:            input.TeamID,
		CategoryID:        input.CategoryID,
		SubCategoryID:     input.SubCategoryID,
		CreatedAt:         now,
		UpdatedAt:         now,
		ResolutionDueDate: &due,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityMedium
	}
	if ticket.Source == "" {
		ticket.Source = domain.TicketSourcePortal
	}
	if ticket.TeamID == "" {
		if team, ok := s.teams.First(); ok {
			ticket.TeamID = team.ID
		}
	}
	if input.AssigneeID != nil && *input.AssigneeID != "" {
		ticket.AssigneeID = input.AssigneeID
		assignedAt := now
		ticket.AssignedAt = &assignedAt
	}

	s.tickets.Create(ticket)
	s.publish(ctx, events.Event{
		Type:        events.EventTicketCreated,
		TicketID:    ticket.ID,
		DisplayID:   ticket.DisplayID,
		ActorName:   s.userName(ticket.RequesterID),
		Description: fmt.Sprintf("New ticket %s created", ticket.DisplayID),
	})
	return ticket, nil
}

// Update shallow-merges the raw JSON patch over the stored ticket and forces
// updated_at to now regardless of caller input. The id and display_id are
// immutable.
func (s *TicketService) Update(ctx context.Context, id string, patch []byte) (domain.Ticket, error) {
	var before domain.Ticket
	updated, err := s.tickets.Update(id, func(existing domain.Ticket) (domain.Ticket, error) {
		before = existing
		merged, mergeErr := store.MergePatch(existing, patch)
		if mergeErr != nil {
			return existing, errInvalidPatch
		}
		merged.ID = existing.ID
		merged.DisplayID = existing.DisplayID
		merged.UpdatedAt = time.Now()
		return merged, nil
	})
	if err != nil {
		if errors.Is(err, errInvalidPatch) {
			return domain.Ticket{}, apperrors.NewValidationError("invalid payload")
		}
		return domain.Ticket{}, apperrors.NewNotFound("Ticket")
	}

	s.publishChanges(ctx, before, updated)
	return updated, nil
}

// ListComments returns the ticket's thread sorted ascending by created_at.
// Reads never generate filler data; unknown tickets yield an empty thread.
func (s *TicketService) ListComments(ticketID string) []domain.Comment {
	return s.comments.ListByTicket(ticketID)
}

// AddComment validates and appends one comment to an existing ticket.
func (s *TicketService) AddComment(ctx context.Context, ticketID string, input CommentCreateInput) (domain.Comment, error) {
	if strings.TrimSpace(input.Body) == "" {
		return domain.Comment{}, apperrors.NewValidationError("body required")
	}
	ticket, err := s.tickets.GetByID(ticketID)
	if err != nil {
		return domain.Comment{}, apperrors.NewNotFound("Ticket")
	}

	authorID := input.AuthorID
	if authorID == "" {
		authorID = uuid.NewString()
	}
	comment := domain.Comment{
		ID:             uuid.NewString(),
		TicketID:       ticket.ID,
		AuthorID:       authorID,
		Body:           input.Body,
		IsInternalNote: input.IsInternalNote,
		CreatedAt:      time.Now(),
	}
	s.comments.Create(comment)
	s.publish(ctx, events.Event{
		Type:        events.EventCommentAdded,
		TicketID:    ticket.ID,
		DisplayID:   ticket.DisplayID,
		ActorName:   s.userName(authorID),
		Description: fmt.Sprintf("Comment added to ticket %s", ticket.DisplayID),
	})
	return comment, nil
}

// publishChanges emits the most specific events for a patched ticket.
func (s *TicketService) publishChanges(ctx context.Context, before, after domain.Ticket) {
	emitted := false
	if before.Status != after.Status {
		eventType := events.EventTicketStatusChanged
		description := fmt.Sprintf("Ticket %s moved to %s", after.DisplayID, after.Status)
		if after.Status == domain.TicketStatusResolved || after.Status == domain.TicketStatusClosed {
			eventType = events.EventTicketResolved
			description = fmt.Sprintf("Ticket %s marked as %s", after.DisplayID, strings.ToLower(string(after.Status)))
		}
		s.publish(ctx, events.Event{
			Type:        eventType,
			TicketID:    after.ID,
			DisplayID:   after.DisplayID,
			Description: description,
		})
		emitted = true
	}
	if !assigneeEqual(before.AssigneeID, after.AssigneeID) && after.AssigneeID != nil {
		s.publish(ctx, events.Event{
			Type:        events.EventTicketAssigned,
			TicketID:    after.ID,
			DisplayID:   after.DisplayID,
			ActorName:   s.userName(*after.AssigneeID),
			Description: fmt.Sprintf("Ticket %s assigned to %s", after.DisplayID, s.userName(*after.AssigneeID)),
		})
		emitted = true
	}
	if !emitted {
		s.publish(ctx, events.Event{
			Type:        events.EventTicketUpdated,
			TicketID:    after.ID,
			DisplayID:   after.DisplayID,
			Description: fmt.Sprintf("Ticket %s updated", after.DisplayID),
		})
	}
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// userName resolves a display name, falling back to empty for unknown ids.
func (s *TicketService) userName(id string) string {
	if id == "" {
		return ""
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return ""
	}
	return user.FullName
}

func assigneeEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
