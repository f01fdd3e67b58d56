package domain

import "time"

// Comment is one entry in a ticket's conversation thread. Internal notes are
// only surfaced on agent-facing views.
type Comment struct {
	ID             string    `json:"id"`
	TicketID       string    `json:"ticket_id"`
	AuthorID       string    `json:"author_id"`
	Body           string    `json:"body"`
	IsInternalNote bool      `json:"is_internal_note"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordID returns the store key.
func (c Comment) RecordID() string { return c.ID }
