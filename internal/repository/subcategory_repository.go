package repository

import (
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// SubcategoryRepository manages category refinements.
type SubcategoryRepository interface {
	Seed(subcategories []domain.Subcategory) bool
	List(match func(domain.Subcategory) bool) []domain.Subcategory
	ListByParent(parentCategoryID string) []domain.Subcategory
	GetByID(id string) (domain.Subcategory, error)
	Create(subcategory domain.Subcategory)
	Patch(id string, patch []byte) (domain.Subcategory, error)
	Delete(id string) (domain.Subcategory, error)
}

type subcategoryRepository struct {
	crudRepository[domain.Subcategory]
}

// NewSubcategoryRepository constructs repository.
func NewSubcategoryRepository() SubcategoryRepository {
	return &subcategoryRepository{newCRUDRepository[domain.Subcategory]()}
}

func (r *subcategoryRepository) ListByParent(parentCategoryID string) []domain.Subcategory {
	return r.records.List(func(s domain.Subcategory) bool {
		return s.ParentCategoryID == parentCategoryID
	})
}
