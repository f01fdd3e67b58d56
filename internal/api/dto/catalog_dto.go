package dto

// CreateTeamRequest payload.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// CreateCategoryRequest payload.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateSubcategoryRequest payload.
type CreateSubcategoryRequest struct {
	Name             string `json:"name"`
	ParentCategoryID string `json:"parent_category_id"`
}
