package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/worker"
)

func TestDashboardStatsShape(t *testing.T) {
	svc := NewDashboardService(nil, nil, gofakeit.New(11))
	stats := svc.Stats()

	within := func(name string, v, lo, hi int) {
		if v < lo || v > hi {
			t.Fatalf("%s out of range: %d not in [%d,%d]", name, v, lo, hi)
		}
	}
	within("totalOpenTickets", stats.TotalOpenTickets, 45, 120)
	within("myAssignedTickets", stats.MyAssignedTickets, 8, 25)
	within("unassignedTickets", stats.UnassignedTickets, 5, 15)
	within("highPriorityOpen", stats.HighPriorityOpen, 2, 8)

	if len(stats.TicketsByCategory) != 5 {
		t.Fatalf("expected 5 chart categories, got %d", len(stats.TicketsByCategory))
	}
	if len(stats.TicketTrends) != 7 {
		t.Fatalf("expected 7 trend points, got %d", len(stats.TicketTrends))
	}
	if stats.TicketTrends[6].Date != time.Now().Format("2006-01-02") {
		t.Fatalf("last trend point should be today, got %s", stats.TicketTrends[6].Date)
	}
	if len(stats.RecentActivity) != 8 {
		t.Fatalf("expected 8 activity entries, got %d", len(stats.RecentActivity))
	}
}

func TestDashboardSeedDeterminism(t *testing.T) {
	first := NewDashboardService(nil, nil, gofakeit.New(42)).Stats()
	second := NewDashboardService(nil, nil, gofakeit.New(42)).Stats()

	if first.TotalOpenTickets != second.TotalOpenTickets ||
		first.MyAssignedTickets != second.MyAssignedTickets ||
		first.UnassignedTickets != second.UnassignedTickets ||
		first.HighPriorityOpen != second.HighPriorityOpen {
		t.Fatalf("counters must be deterministic per seed: %+v vs %+v", first, second)
	}
	for i := range first.TicketsByCategory {
		if first.TicketsByCategory[i] != second.TicketsByCategory[i] {
			t.Fatalf("chart mismatch at %d", i)
		}
	}
}

func TestDashboardUsesSeededCategoryNames(t *testing.T) {
	categoryRepo := repository.NewCategoryRepository()
	categoryRepo.Seed([]domain.Category{
		{ID: "c1", Name: "Hardware"},
		{ID: "c2", Name: "Software"},
	})
	svc := NewDashboardService(categoryRepo, nil, gofakeit.New(3))
	stats := svc.Stats()
	if len(stats.TicketsByCategory) != 2 {
		t.Fatalf("expected 2 chart categories, got %d", len(stats.TicketsByCategory))
	}
	if stats.TicketsByCategory[0].Name != "Hardware" || stats.TicketsByCategory[1].Name != "Software" {
		t.Fatalf("chart should use seeded names: %+v", stats.TicketsByCategory)
	}
}

func TestDashboardFeedPrefersRecordedEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := worker.NewActivityRecorder()
	worker.StartActivityRecorder(recorder, dispatcher)

	ctx := context.Background()
	dispatcher.Publish(ctx, events.Event{
		ID:          "e1",
		Type:        events.EventTicketCreated,
		DisplayID:   "TICK-0001",
		ActorName:   "Dana Cruz",
		Description: "New ticket TICK-0001 created",
		Timestamp:   time.Now().Add(-time.Minute),
	})
	dispatcher.Publish(ctx, events.Event{
		ID:          "e2",
		Type:        events.EventCommentAdded,
		DisplayID:   "TICK-0001",
		Description: "Comment added to ticket TICK-0001",
		Timestamp:   time.Now(),
	})

	feed := NewDashboardService(nil, recorder, gofakeit.New(9)).Stats().RecentActivity
	if len(feed) != 8 {
		t.Fatalf("feed must be padded to 8 entries, got %d", len(feed))
	}
	if feed[0].ID != "e2" || feed[1].ID != "e1" {
		t.Fatalf("recorded events must lead the feed newest first: %+v", feed[:2])
	}
	if feed[0].TicketID != "TICK-0001" || feed[0].Type != string(events.EventCommentAdded) {
		t.Fatalf("recorded event mapped incorrectly: %+v", feed[0])
	}
	for _, entry := range feed[2:] {
		if entry.ID == "" || entry.Description == "" || entry.Timestamp == "" {
			t.Fatalf("padded entry incomplete: %+v", entry)
		}
	}
}
