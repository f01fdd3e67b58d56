package domain

// Team is a support group tickets can be routed to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordID returns the store key.
func (t Team) RecordID() string { return t.ID }
