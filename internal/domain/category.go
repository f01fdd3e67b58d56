package domain

// Category is a top-level ticket classification.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordID returns the store key.
func (c Category) RecordID() string { return c.ID }
