package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/worker"
)

// activityFeedSize is the fixed length of the recent-activity feed.
const activityFeedSize = 8

// chartCategories caps the tickets-by-category chart.
const chartCategories = 5

// categoryCountRanges holds the min/max sample window per chart position.
var categoryCountRanges = [][2]int{{15, 35}, {20, 40}, {8, 20}, {10, 25}, {5, 15}}

var fallbackActivityDescriptions = []string{
	"New ticket created by John Smith",
	"Ticket TICK-0123 assigned to Sarah Johnson",
	"Ticket TICK-0456 marked as resolved",
	"Comment added to ticket TICK-0789",
	"High priority ticket created",
	"Ticket escalated to Level 2 support",
}

var fallbackActivityTypes = []string{
	string(events.EventTicketCreated),
	string(events.EventTicketAssigned),
	string(events.EventTicketResolved),
	string(events.EventCommentAdded),
}

// DashboardService synthesizes dashboard statistics. Counters and trends are
// sampled from the injected faker on every call; the activity feed prefers
// real recorded events and pads the remainder with generated entries.
type DashboardService struct {
	categories repository.CategoryRepository
	activity   *worker.ActivityRecorder

	fakerMu sync.Mutex
	faker   *gofakeit.Faker
}

// NewDashboardService constructs the service.
func NewDashboardService(categories repository.CategoryRepository, activity *worker.ActivityRecorder, faker *gofakeit.Faker) *DashboardService {
	return &DashboardService{categories: categories, activity: activity, faker: faker}
}

// Stats builds one freshly sampled dashboard payload.
func (s *DashboardService) Stats() domain.DashboardStats {
	s.fakerMu.Lock()
	defer s.fakerMu.Unlock()
	f := s.faker
	now := time.Now()

	stats := domain.DashboardStats{
		TotalOpenTickets:  f.Number(45, 120),
		MyAssignedTickets: f.Number(8, 25),
		UnassignedTickets: f.Number(5, 15),
		HighPriorityOpen:  f.Number(2, 8),
	}

	for i, name := range s.chartCategoryNames() {
		window := categoryCountRanges[i%len(categoryCountRanges)]
		stats.TicketsByCategory = append(stats.TicketsByCategory, domain.CategoryCount{
			Name:  name,
			Count: f.Number(window[0], window[1]),
		})
	}

	for i := 0; i < 7; i++ {
		stats.TicketTrends = append(stats.TicketTrends, domain.TrendPoint{
			Date:     now.AddDate(0, 0, -(6 - i)).Format("2006-01-02"),
			Created:  f.Number(5, 20),
			Resolved: f.Number(3, 18),
		})
	}

	stats.RecentActivity = s.activityFeed(f, now)
	return stats
}

// chartCategoryNames prefers real seeded category names and falls back to a
// static set when the store is empty.
func (s *DashboardService) chartCategoryNames() []string {
	names := []string{}
	if s.categories != nil {
		for _, category := range s.categories.List(nil) {
			names = append(names, category.Name)
			if len(names) == chartCategories {
				break
			}
		}
	}
	if len(names) == 0 {
		names = []string{"Hardware Issues", "Software Support", "Account Access", "Network Issues", "Email Support"}
	}
	return names
}

func (s *DashboardService) activityFeed(f *gofakeit.Faker, now time.Time) []domain.ActivityEntry {
	feed := make([]domain.ActivityEntry, 0, activityFeedSize)
	if s.activity != nil {
		for _, event := range s.activity.Recent(activityFeedSize) {
			feed = append(feed, domain.ActivityEntry{
				ID:          event.ID,
				Type:        string(event.Type),
				Description: event.Description,
				Timestamp:   event.Timestamp.Format(time.RFC3339),
				TicketID:    event.DisplayID,
				User:        event.ActorName,
			})
		}
	}
	for len(feed) < activityFeedSize {
		feed = append(feed, domain.ActivityEntry{
			ID:          f.UUID(),
			Type:        f.RandomString(fallbackActivityTypes),
			Description: f.RandomString(fallbackActivityDescriptions),
			Timestamp:   f.DateRange(now.Add(-48*time.Hour), now).Format(time.RFC3339),
			TicketID:    fmt.Sprintf("TICK-%04d", f.Number(1000, 9999)),
			User:        f.Name(),
		})
	}
	return feed
}
