package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// CatalogService coordinates teams, categories and subcategories.
type CatalogService struct {
	teams         repository.TeamRepository
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
}

// CatalogDependencies bundles repositories for the catalog service.
type CatalogDependencies struct {
	TeamRepo        repository.TeamRepository
	CategoryRepo    repository.CategoryRepository
	SubcategoryRepo repository.SubcategoryRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		teams:         deps.TeamRepo,
		categories:    deps.CategoryRepo,
		subcategories: deps.SubcategoryRepo,
	}
}

// ListTeams returns every team in insertion order.
func (s *CatalogService) ListTeams() []domain.Team {
	return s.teams.List(nil)
}

// CreateTeam validates and appends a team.
func (s *CatalogService) CreateTeam(name string) (domain.Team, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Team{}, apperrors.NewValidationError("name required")
	}
	team := domain.Team{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	s.teams.Create(team)
	return team, nil
}

// UpdateTeam shallow-merges the raw JSON patch over the stored team.
func (s *CatalogService) UpdateTeam(id string, patch []byte) (domain.Team, error) {
	team, err := s.teams.Patch(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Team{}, apperrors.NewNotFound("Team")
		}
		return domain.Team{}, apperrors.NewValidationError("invalid payload")
	}
	return team, nil
}

// DeleteTeam removes the team and returns it.
func (s *CatalogService) DeleteTeam(id string) (domain.Team, error) {
	team, err := s.teams.Delete(id)
	return team, apperrors.NotFoundAs(err, "Team")
}

// ListCategories returns every category in insertion order.
func (s *CatalogService) ListCategories() []domain.Category {
	return s.categories.List(nil)
}

// CreateCategory validates and appends a category.
func (s *CatalogService) CreateCategory(name string) (domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Category{}, apperrors.NewValidationError("name required")
	}
	category := domain.Category{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	s.categories.Create(category)
	return category, nil
}

// UpdateCategory shallow-merges the raw JSON patch over the stored category.
func (s *CatalogService) UpdateCategory(id string, patch []byte) (domain.Category, error) {
	category, err := s.categories.Patch(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, apperrors.NewNotFound("Category")
		}
		return domain.Category{}, apperrors.NewValidationError("invalid payload")
	}
	return category, nil
}

// DeleteCategory removes the category and returns it. Subcategories and
// tickets referencing it keep their now-dangling ids.
func (s *CatalogService) DeleteCategory(id string) (domain.Category, error) {
	category, err := s.categories.Delete(id)
	return category, apperrors.NotFoundAs(err, "Category")
}

// ListSubcategories returns subcategories, optionally narrowed to one parent
// category.
func (s *CatalogService) ListSubcategories(parentCategoryID string) []domain.Subcategory {
	if parentCategoryID != "" {
		return s.subcategories.ListByParent(parentCategoryID)
	}
	return s.subcategories.List(nil)
}

// CreateSubcategory validates and appends a subcategory. The parent id is
// required but not checked against the category store.
func (s *CatalogService) CreateSubcategory(name, parentCategoryID string) (domain.Subcategory, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Subcategory{}, apperrors.NewValidationError("name required")
	}
	if strings.TrimSpace(parentCategoryID) == "" {
		return domain.Subcategory{}, apperrors.NewValidationError("parent_category_id required")
	}
	subcategory := domain.Subcategory{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(name),
		ParentCategoryID: parentCategoryID,
	}
	s.subcategories.Create(subcategory)
	return subcategory, nil
}

// UpdateSubcategory shallow-merges the raw JSON patch over the stored
// subcategory.
func (s *CatalogService) UpdateSubcategory(id string, patch []byte) (domain.Subcategory, error) {
	subcategory, err := s.subcategories.Patch(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Subcategory{}, apperrors.NewNotFound("Subcategory")
		}
		return domain.Subcategory{}, apperrors.NewValidationError("invalid payload")
	}
	return subcategory, nil
}

// DeleteSubcategory removes the subcategory and returns it.
func (s *CatalogService) DeleteSubcategory(id string) (domain.Subcategory, error) {
	subcategory, err := s.subcategories.Delete(id)
	return subcategory, apperrors.NotFoundAs(err, "Subcategory")
}
