package fixtures

import (
	"regexp"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestGenerateCounts(t *testing.T) {
	d := Generate(gofakeit.New(1), Options{Users: 10, Tickets: 20})
	if len(d.Users) != 10 {
		t.Fatalf("expected 10 users, got %d", len(d.Users))
	}
	if len(d.Tickets) != 20 {
		t.Fatalf("expected 20 tickets, got %d", len(d.Tickets))
	}
	if len(d.Teams) != 4 || len(d.Categories) != 8 || len(d.Subcategories) != 13 {
		t.Fatalf("unexpected catalog sizes: %d teams, %d categories, %d subcategories",
			len(d.Teams), len(d.Categories), len(d.Subcategories))
	}
	if len(d.Comments) < 2*len(d.Tickets) || len(d.Comments) > 8*len(d.Tickets) {
		t.Fatalf("comment volume out of range: %d for %d tickets", len(d.Comments), len(d.Tickets))
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(gofakeit.New(42), Options{Users: 5, Tickets: 5})
	b := Generate(gofakeit.New(42), Options{Users: 5, Tickets: 5})
	for i := range a.Users {
		if a.Users[i].FullName != b.Users[i].FullName || a.Users[i].Email != b.Users[i].Email {
			t.Fatalf("user %d differs across identically seeded runs", i)
		}
	}
	for i := range a.Tickets {
		if a.Tickets[i].Subject != b.Tickets[i].Subject || a.Tickets[i].Status != b.Tickets[i].Status {
			t.Fatalf("ticket %d differs across identically seeded runs", i)
		}
	}
}

func TestGenerateReferentialCoherence(t *testing.T) {
	d := Generate(gofakeit.New(7), Options{Users: 8, Tickets: 30})

	userIDs := map[string]bool{}
	for _, u := range d.Users {
		userIDs[u.ID] = true
	}
	teamIDs := map[string]bool{}
	for _, tm := range d.Teams {
		teamIDs[tm.ID] = true
	}
	categoryIDs := map[string]bool{}
	for _, c := range d.Categories {
		categoryIDs[c.ID] = true
	}
	ticketIDs := map[string]bool{}

	displayPattern := regexp.MustCompile(`^TICK-\d{4}$`)
	for _, tk := range d.Tickets {
		ticketIDs[tk.ID] = true
		if !userIDs[tk.RequesterID] {
			t.Fatalf("ticket %s references unknown requester %s", tk.DisplayID, tk.RequesterID)
		}
		if !teamIDs[tk.TeamID] || !categoryIDs[tk.CategoryID] {
			t.Fatalf("ticket %s references unknown team or category", tk.DisplayID)
		}
		if !displayPattern.MatchString(tk.DisplayID) {
			t.Fatalf("bad display id %q", tk.DisplayID)
		}
		if tk.Status == domain.TicketStatusOpen && tk.AssigneeID != nil {
			t.Fatalf("open ticket %s should be unassigned", tk.DisplayID)
		}
		if tk.Status != domain.TicketStatusOpen && tk.AssigneeID == nil {
			t.Fatalf("non-open ticket %s should carry an assignee", tk.DisplayID)
		}
		if tk.UpdatedAt.Before(tk.CreatedAt) {
			t.Fatalf("ticket %s updated before created", tk.DisplayID)
		}
	}
	for _, sub := range d.Subcategories {
		if !categoryIDs[sub.ParentCategoryID] {
			t.Fatalf("subcategory %s has dangling parent", sub.Name)
		}
	}
	for _, c := range d.Comments {
		if !ticketIDs[c.TicketID] {
			t.Fatalf("comment %s references unknown ticket", c.ID)
		}
		if !userIDs[c.AuthorID] {
			t.Fatalf("comment %s references unknown author", c.ID)
		}
	}
}

func TestGenerateDesignatesAnAgent(t *testing.T) {
	d := Generate(gofakeit.New(3), Options{Users: 3, Tickets: 1})
	if d.DesignatedAgentID == "" {
		t.Fatalf("expected a designated agent")
	}
	found := false
	for _, u := range d.Users {
		if u.ID == d.DesignatedAgentID {
			if u.Role != domain.UserRoleAgent {
				t.Fatalf("designated agent has role %s", u.Role)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("designated agent id not present in user set")
	}
}
