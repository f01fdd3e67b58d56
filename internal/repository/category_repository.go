package repository

import (
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CategoryRepository manages ticket categories. Deleting a category does not
// cascade to subcategories or tickets referencing it.
type CategoryRepository interface {
	Seed(categories []domain.Category) bool
	List(match func(domain.Category) bool) []domain.Category
	GetByID(id string) (domain.Category, error)
	Create(category domain.Category)
	Patch(id string, patch []byte) (domain.Category, error)
	Delete(id string) (domain.Category, error)
}

type categoryRepository struct {
	crudRepository[domain.Category]
}

// NewCategoryRepository constructs repository.
func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{newCRUDRepository[domain.Category]()}
}
