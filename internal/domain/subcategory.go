package domain

// Subcategory refines a Category. The parent reference is a bare id and is
// not validated against the category store on write.
type Subcategory struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ParentCategoryID string `json:"parent_category_id"`
}

// RecordID returns the store key.
func (s Subcategory) RecordID() string { return s.ID }
