package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketResolved      EventType = "ticket_resolved"
	EventCommentAdded        EventType = "comment_added"
)

// AllTypes returns every event type, in declaration order.
func AllTypes() []EventType {
	return []EventType{
		EventTicketCreated,
		EventTicketUpdated,
		EventTicketStatusChanged,
		EventTicketAssigned,
		EventTicketResolved,
		EventCommentAdded,
	}
}

// Event represents a domain event emitted by services. ActorName is the
// display name of whoever triggered the change, when known.
type Event struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	TicketID    string    `json:"ticket_id"`
	DisplayID   string    `json:"display_id"`
	ActorName   string    `json:"actor_name,omitempty"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
