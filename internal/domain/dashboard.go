package domain

// DashboardStats is the synthesized payload behind /dashboard/stats. Field
// names stay camelCase to match the dashboard consumer.
type DashboardStats struct {
	TotalOpenTickets  int             `json:"totalOpenTickets"`
	MyAssignedTickets int             `json:"myAssignedTickets"`
	UnassignedTickets int             `json:"unassignedTickets"`
	HighPriorityOpen  int             `json:"highPriorityOpen"`
	TicketsByCategory []CategoryCount `json:"ticketsByCategory"`
	TicketTrends      []TrendPoint    `json:"ticketTrends"`
	RecentActivity    []ActivityEntry `json:"recentActivity"`
}

// CategoryCount is one bar of the tickets-by-category chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendPoint is one day of the created-vs-resolved series.
type TrendPoint struct {
	Date     string `json:"date"`
	Created  int    `json:"created"`
	Resolved int    `json:"resolved"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	TicketID    string `json:"ticketId"`
	User        string `json:"user"`
}
