package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusPending    TicketStatus = "Pending"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// TicketSource enumerates intake channels.
type TicketSource string

const (
	TicketSourceEmail  TicketSource = "Email"
	TicketSourcePortal TicketSource = "Portal"
	TicketSourcePhone  TicketSource = "Phone"
	TicketSourceChat   TicketSource = "Chat"
)

// ApprovalStatus enumerates the optional approval workflow states.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

// Ticket is the aggregate for support requests. Requester, assignee, team
// and category are bare id references into their own stores.
type Ticket struct {
	ID                string          `json:"id"`
	DisplayID         string          `json:"display_id"`
	Subject           string          `json:"subject"`
	Description       string          `json:"description"`
	Status            TicketStatus    `json:"status"`
	Priority          TicketPriority  `json:"priority"`
	Source            TicketSource    `json:"source"`
	ApprovalStatus    *ApprovalStatus `json:"approval_status"`
	ResolutionNotes   *string         `json:"resolution_notes"`
	RequesterID       string          `json:"requester_id"`
	AssigneeID        *string         `json:"assignee_id"`
	TeamID            string          `json:"team_id"`
	CategoryID        string          `json:"category_id"`
	SubCategoryID     string          `json:"sub_category_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	AssignedAt        *time.Time      `json:"assigned_at"`
	FirstRespondedAt  *time.Time      `json:"first_responded_at"`
	ClosedAt          *time.Time      `json:"closed_at"`
	ResolutionDueDate *time.Time      `json:"resolution_due_date"`
}

// RecordID returns the store key.
func (t Ticket) RecordID() string { return t.ID }
