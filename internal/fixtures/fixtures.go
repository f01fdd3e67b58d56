// Package fixtures generates the randomized sample data every store is
// seeded with at process start. Shapes are deterministic; content comes from
// a caller-supplied faker so tests can pin the seed.
package fixtures

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

var teamNames = []string{"IT Support", "HR Support", "Finance Support", "Facilities"}

var categoryNames = []string{
	"Hardware Issues",
	"Software Support",
	"Account Access",
	"Network Issues",
	"Email Support",
	"Phone Support",
	"Training Request",
	"General Inquiry",
}

// subcategoryNames maps fixed subcategory labels to the index of their
// parent in categoryNames.
var subcategoryNames = []struct {
	name   string
	parent int
}{
	{"Desktop Computer", 0},
	{"Laptop Issues", 0},
	{"Printer Problems", 0},
	{"Monitor Issues", 0},
	{"Microsoft Office", 1},
	{"Adobe Creative Suite", 1},
	{"Web Browser Issues", 1},
	{"Password Reset", 2},
	{"Account Locked", 2},
	{"New User Setup", 2},
	{"Wi-Fi Connection", 3},
	{"VPN Issues", 3},
	{"Internet Slow", 3},
}

// Options bounds the generated volume.
type Options struct {
	Users   int
	Tickets int
}

// Data is one coherent fixture set: tickets reference seeded users, teams,
// categories and subcategories by id, and every ticket carries a short
// comment thread.
type Data struct {
	Users             []domain.User
	Teams             []domain.Team
	Categories        []domain.Category
	Subcategories     []domain.Subcategory
	Tickets           []domain.Ticket
	Comments          []domain.Comment
	DesignatedAgentID string
}

// Generate builds a fixture set. At least one user always holds the Agent
// role; the earliest one becomes the designated agent for the
// "My Open Tickets" fallback.
func Generate(f *gofakeit.Faker, opts Options) *Data {
	if opts.Users <= 0 {
		opts.Users = 30
	}
	if opts.Tickets <= 0 {
		opts.Tickets = 100
	}

	d := &Data{}
	now := time.Now()

	for i := 0; i < opts.Users; i++ {
		d.Users = append(d.Users, domain.User{
			ID:             f.UUID(),
			FullName:       f.Name(),
			Email:          f.Email(),
			PhoneNumber:    f.Phone(),
			OfficeLocation: f.City() + ", " + f.State(),
			Role:           domain.UserRole(f.RandomString([]string{"Agent", "Admin", "User"})),
		})
	}
	agentIdx := -1
	for i, u := range d.Users {
		if u.Role == domain.UserRoleAgent {
			agentIdx = i
			break
		}
	}
	if agentIdx < 0 {
		d.Users[0].Role = domain.UserRoleAgent
		agentIdx = 0
	}
	d.DesignatedAgentID = d.Users[agentIdx].ID

	for _, name := range teamNames {
		d.Teams = append(d.Teams, domain.Team{ID: f.UUID(), Name: name})
	}
	for _, name := range categoryNames {
		d.Categories = append(d.Categories, domain.Category{ID: f.UUID(), Name: name})
	}
	for _, sub := range subcategoryNames {
		d.Subcategories = append(d.Subcategories, domain.Subcategory{
			ID:               f.UUID(),
			Name:             sub.name,
			ParentCategoryID: d.Categories[sub.parent].ID,
		})
	}

	for i := 0; i < opts.Tickets; i++ {
		createdAt := f.DateRange(now.AddDate(0, -6, 0), now.Add(-time.Hour))
		updatedAt := f.DateRange(createdAt, now)
		status := domain.TicketStatus(f.RandomString([]string{
			"Open", "In Progress", "Pending", "Resolved", "Closed",
		}))

		ticket := domain.Ticket{
			ID:          f.UUID(),
			DisplayID:   fmt.Sprintf("TICK-%04d", i+1),
			Subject:     f.Sentence(6),
			Description: f.Paragraph(2, 3, 12, " "),
			Status:      status,
			Priority:    domain.TicketPriority(f.RandomString([]string{"Low", "Medium", "High", "Critical"})),
			Source:      domain.TicketSource(f.RandomString([]string{"Email", "Portal", "Phone", "Chat"})),
			RequesterID: pick(f, d.Users).ID,
			TeamID:      pick(f, d.Teams).ID,
			CategoryID:  pick(f, d.Categories).ID,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		}
		ticket.SubCategoryID = pick(f, d.Subcategories).ID

		if status != domain.TicketStatusOpen {
			assignee := pick(f, d.Users).ID
			ticket.AssigneeID = &assignee
			assignedAt := f.DateRange(createdAt, updatedAt)
			ticket.AssignedAt = &assignedAt
		}
		firstResponded := f.DateRange(createdAt, updatedAt)
		ticket.FirstRespondedAt = &firstResponded
		if status == domain.TicketStatusClosed {
			closedAt := f.DateRange(createdAt, updatedAt)
			ticket.ClosedAt = &closedAt
		}
		if status == domain.TicketStatusResolved || status == domain.TicketStatusClosed {
			notes := f.Paragraph(1, 3, 10, " ")
			ticket.ResolutionNotes = &notes
		}
		if approval := f.RandomString([]string{"Pending", "Approved", "Rejected", ""}); approval != "" {
			as := domain.ApprovalStatus(approval)
			ticket.ApprovalStatus = &as
		}
		dueDate := f.DateRange(now, now.AddDate(0, 0, 30))
		ticket.ResolutionDueDate = &dueDate

		d.Tickets = append(d.Tickets, ticket)

		// Seed the conversation thread up front; reads never generate data.
		for n := f.Number(2, 8); n > 0; n-- {
			d.Comments = append(d.Comments, domain.Comment{
				ID:             f.UUID(),
				TicketID:       ticket.ID,
				AuthorID:       pick(f, d.Users).ID,
				Body:           f.Paragraph(1, 2, 12, " "),
				IsInternalNote: f.Bool(),
				CreatedAt:      f.DateRange(createdAt, now),
			})
		}
	}

	return d
}

func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.Number(0, len(items)-1)]
}
